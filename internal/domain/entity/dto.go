package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// RefDTO is the wire form of an EntityRef. Type accepts any casing
// ParseEntityType understands.
type RefDTO struct {
	Type string `json:"type" binding:"required"`
	ID   int64  `json:"id" binding:"required"`
}

func (d RefDTO) Ref() (EntityRef, error) {
	t, err := ParseEntityType(d.Type)
	if err != nil {
		return EntityRef{}, err
	}
	ref := NewRef(t, d.ID)
	if !ref.Valid() {
		return EntityRef{}, fmt.Errorf("invalid entity id %d", d.ID)
	}
	return ref, nil
}

// ParseRef builds a ref from path or query values. Non-numeric and
// non-positive ids are rejected.
func ParseRef(typeStr, idStr string) (EntityRef, error) {
	t, err := ParseEntityType(typeStr)
	if err != nil {
		return EntityRef{}, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
	if err != nil || id <= 0 {
		return EntityRef{}, fmt.Errorf("invalid entity id %q", idStr)
	}
	return NewRef(t, id), nil
}

// ParseRefList parses "dispatch:9,sale:2". Malformed entries are returned
// as an error rather than silently dropped.
func ParseRefList(s string) ([]EntityRef, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var refs []EntityRef
	for _, part := range strings.Split(s, ",") {
		typeStr, idStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("malformed entity reference %q", part)
		}
		ref, err := ParseRef(typeStr, idStr)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
