package dialect

import "strconv"

// finalizeQualifier assigns qb's qualifier its final, collision-free value.
// It is idempotent and is called lazily, in render order, the first time a
// scope is about to render its principal source — mirroring
// finalize_principal_qualifier being the first statement of SqlSelect.emit
// in the source this package is based on.
func (qb *QueryBuilder) finalizeQualifier() error {
	if qb.qualifierFinalized {
		return nil
	}
	qb.qualifierFinalized = true
	if qb.host == nil {
		return qb.root.finalizeRootQualifier(qb)
	}
	return qb.host.finalizeGuestQualifier(qb)
}

// finalizeRootQualifier registers qb's qualifier against the shared
// root-level registry, renaming it on collision.
func (r *SQLEmitter) finalizeRootQualifier(qb *QueryBuilder) error {
	if r.qualifyWhatever {
		return nil
	}
	if err := qb.ensureQualifier(); err != nil {
		return err
	}
	if r.qualifiers[qb.qualifier] {
		alias := nextQualifier(qb.qualifier, r.qualifiers)
		qb.qualifier, qb.principalAlias = alias, alias
	}
	r.qualifiers[qb.qualifier] = true
	return nil
}

// finalizeGuestQualifier registers guest's qualifier (a join or subquery
// scope directly nested in qb) either against the shared root registry,
// when Dialect.UniqueQualifiers is set, or against qb's own direct guests
// otherwise.
func (qb *QueryBuilder) finalizeGuestQualifier(guest *QueryBuilder) error {
	if err := qb.finalizeQualifier(); err != nil {
		return err
	}
	if qb.root.qualifyWhatever {
		return nil
	}
	if qb.root.Dialect.UniqueQualifiers {
		return qb.root.finalizeRootQualifier(guest)
	}
	if err := guest.ensureQualifier(); err != nil {
		return err
	}
	if qb.qualifiers[guest.qualifier] {
		alias := nextQualifier(guest.qualifier, qb.qualifiers)
		guest.qualifier, guest.principalAlias = alias, alias
	}
	qb.qualifiers[guest.qualifier] = true
	return nil
}

// nextQualifier finds the first alias of the form base, base2, base3, ...
// (base_2 when base doesn't already end in a digit) absent from taken.
func nextQualifier(base string, taken map[string]bool) string {
	if !taken[base] {
		return base
	}
	sep := "_"
	if last := base[len(base)-1]; last >= '0' && last <= '9' {
		sep = ""
	}
	for index := 2; ; index++ {
		alias := base + sep + strconv.Itoa(index)
		if !taken[alias] {
			return alias
		}
	}
}
