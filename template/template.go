// Package template implements a tagged-region text editor: a document of
// plain text with named regions pointing into it, where writing a new value
// for a tag shifts every other region's offsets to account for the change in
// length. Regions may nest or share boundaries but never cross.
package template

import (
	"sort"

	"github.com/sqlforge/sqlforge/sqlerr"
)

// Region is a half-open byte range [Start, Stop) into a Template's text.
type Region struct {
	Start, Stop int
}

// Template is a text buffer with tagged regions. Set and Revise modify the
// receiver in place, committing the recomputed text and tags only once they
// validate; on error the receiver is left unchanged. Clone gives an
// independent copy.
type Template struct {
	text string
	tags map[string][]Region
}

// New builds a Template, validating that every region is within bounds, that
// every region belonging to the same tag spans identical text, and that no
// two regions (across any tags) cross one another.
func New(text string, tags map[string][]Region) (*Template, error) {
	if err := validateTags(text, tags); err != nil {
		return nil, err
	}
	return &Template{text: text, tags: cloneTags(tags)}, nil
}

// Text returns the template's current text.
func (t *Template) Text() string { return t.text }

// Len reports the number of distinct tags.
func (t *Template) Len() int { return len(t.tags) }

// Has reports whether tag is present.
func (t *Template) Has(tag string) bool {
	_, ok := t.tags[tag]
	return ok
}

// Clone returns an independent copy sharing no mutable state with t.
func (t *Template) Clone() *Template {
	return &Template{text: t.text, tags: cloneTags(t.tags)}
}

// Get returns the text spanned by tag's first region.
func (t *Template) Get(tag string) (string, error) {
	regions, ok := t.tags[tag]
	if !ok || len(regions) == 0 {
		return "", sqlerr.Withf(sqlerr.NotFound, tag, "template has no tag %q", tag)
	}
	r := regions[0]
	return t.text[r.Start:r.Stop], nil
}

// Set replaces every region tagged tag with content, shifting every other
// region to account for the resulting length change. Regions for tag that
// already coincide collapse to a single adjustment.
func (t *Template) Set(tag, content string) error {
	regions, ok := t.tags[tag]
	if !ok {
		return sqlerr.Withf(sqlerr.NotFound, tag, "template has no tag %q", tag)
	}
	ordered := append([]Region(nil), regions...)
	sortDescending(ordered)

	text := t.text
	tags := cloneTags(t.tags)
	var prev *Region
	for i := range ordered {
		r := ordered[i]
		if prev != nil && *prev == r {
			continue
		}
		ntext, ntags, err := adjust(text, tags, r, content)
		if err != nil {
			return err
		}
		text, tags = ntext, ntags
		prev = &ordered[i]
	}
	if err := validateTags(text, tags); err != nil {
		return err
	}
	t.text, t.tags = text, tags
	return nil
}

// adjustment pins one pending (tag, content) replacement to the region it
// was looked up against, at the time it was looked up — later adjustments to
// other tags can move that region, so the region is captured up front.
type adjustment struct {
	tag     string
	content string
	region  Region
}

// Revise applies every tag-to-content pairing in settings as a single batch:
// every region across all named tags is adjusted in one descending-offset
// pass, so the shift from an earlier (further-right) edit never double
// counts against a later one, and each tag's every surviving region reflects
// the same replacement.
func (t *Template) Revise(settings map[string]string) error {
	var pending []adjustment
	for tag, content := range settings {
		regions, ok := t.tags[tag]
		if !ok {
			return sqlerr.Withf(sqlerr.NotFound, tag, "template has no tag %q", tag)
		}
		for _, r := range regions {
			pending = append(pending, adjustment{tag: tag, content: content, region: r})
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		a, b := pending[i].region, pending[j].region
		if a.Start != b.Start {
			return a.Start > b.Start
		}
		return a.Stop < b.Stop
	})

	unique := pending[:0:0]
	var prevRegion *Region
	var prevContent string
	for _, a := range pending {
		if prevRegion != nil && *prevRegion == a.region {
			if prevContent == a.content {
				continue
			}
			return sqlerr.Withf(sqlerr.Inconsistent, a.tag,
				"conflicting settings at region [%d,%d)", a.region.Start, a.region.Stop)
		}
		region := a.region
		prevRegion, prevContent = &region, a.content
		unique = append(unique, a)
	}

	text := t.text
	tags := cloneTags(t.tags)
	done := map[string]bool{}
	for _, a := range unique {
		if done[a.tag] {
			continue
		}
		regions := append([]Region(nil), tags[a.tag]...)
		sortDescending(regions)
		for _, r := range regions {
			ntext, ntags, err := adjust(text, tags, r, a.content)
			if err != nil {
				return err
			}
			text, tags = ntext, ntags
		}
		done[a.tag] = true
	}
	if err := validateTags(text, tags); err != nil {
		return err
	}
	t.text, t.tags = text, tags
	return nil
}

func sortDescending(regions []Region) {
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Start != regions[j].Start {
			return regions[i].Start > regions[j].Start
		}
		return regions[i].Stop < regions[j].Stop
	})
}

func cloneTags(tags map[string][]Region) map[string][]Region {
	out := make(map[string][]Region, len(tags))
	for tag, regions := range tags {
		out[tag] = append([]Region(nil), regions...)
	}
	return out
}

func validateBoundary(text string, r Region) error {
	if r.Start < 0 {
		return sqlerr.Withf(sqlerr.BoundaryError, "", "region start cannot be negative (start=%d)", r.Start)
	}
	if r.Stop > len(text) {
		return sqlerr.Withf(sqlerr.BoundaryError, "", "region stop cannot exceed text length (length=%d, stop=%d)", len(text), r.Stop)
	}
	if r.Start > r.Stop {
		return sqlerr.Withf(sqlerr.BoundaryError, "", "region start cannot exceed stop (start=%d, stop=%d)", r.Start, r.Stop)
	}
	return nil
}

func validateRegions(text, tag string, regions []Region) error {
	var first string
	haveFirst := false
	for _, r := range regions {
		if err := validateBoundary(text, r); err != nil {
			return err
		}
		content := text[r.Start:r.Stop]
		if !haveFirst {
			first, haveFirst = content, true
		} else if content != first {
			return sqlerr.Withf(sqlerr.Inconsistent, tag,
				"inconsistent tag content: %q vs %q", first, content)
		}
	}
	return nil
}

// crossing reports whether a and b overlap without one containing the other.
func crossing(a, b Region) bool {
	if a.Start < b.Start && b.Start < a.Stop && a.Stop < b.Stop {
		return true
	}
	if b.Start < a.Start && a.Start < b.Stop && b.Stop < a.Stop {
		return true
	}
	return false
}

func validateCrossings(tags map[string][]Region) error {
	type located struct {
		tag    string
		region Region
	}
	var all []located
	for tag, regions := range tags {
		for _, r := range regions {
			all = append(all, located{tag, r})
		}
	}
	for _, a := range all {
		for _, b := range all {
			if crossing(a.region, b.region) {
				return sqlerr.Withf(sqlerr.Inconsistent, a.tag,
					"crossing regions are not allowed (%q[%d,%d) vs %q[%d,%d))",
					a.tag, a.region.Start, a.region.Stop, b.tag, b.region.Start, b.region.Stop)
			}
		}
	}
	return nil
}

func validateTags(text string, tags map[string][]Region) error {
	for tag, regions := range tags {
		if err := validateRegions(text, tag, regions); err != nil {
			return err
		}
	}
	return validateCrossings(tags)
}

// adjust replaces the text spanned by r with content, returning the new text
// and every tag's regions shifted or collapsed to account for it: a region
// matching r exactly becomes the new content's span, a region entirely to
// the left or right is left alone or shifted by the length delta, a region
// strictly containing r grows or shrinks by the delta, and a region strictly
// contained within r disappears (its tag along with it, once no region of
// that tag survives).
func adjust(text string, tags map[string][]Region, r Region, content string) (string, map[string][]Region, error) {
	if err := validateBoundary(text, r); err != nil {
		return "", nil, err
	}
	nstart := r.Start
	nstop := nstart + len(content)
	ntext := text[:r.Start] + content + text[r.Stop:]
	delta := nstop - r.Stop

	ntags := make(map[string][]Region, len(tags))
	for tag, regions := range tags {
		var kept []Region
		for _, rr := range regions {
			switch {
			case rr == r:
				kept = append(kept, Region{nstart, nstop})
			case rr.Stop <= r.Start:
				kept = append(kept, rr)
			case r.Stop <= rr.Start:
				kept = append(kept, Region{rr.Start + delta, rr.Stop + delta})
			case rr.Start <= r.Start && r.Stop <= rr.Stop:
				kept = append(kept, Region{rr.Start, rr.Stop + delta})
			case r.Start <= rr.Start && rr.Stop <= r.Stop:
				// region wholly inside the replaced span: dropped.
			}
		}
		if len(kept) > 0 {
			ntags[tag] = kept
		}
	}
	return ntext, ntags, nil
}
