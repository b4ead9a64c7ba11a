package models

import (
	id "docregistry/pkg/domain"
	dErrors "docregistry/pkg/domain-errors"
)

// Document is the aggregate root for a registered document's metadata.
//
// Invariants:
//   - ID is assigned once by the registry counter, never reused or mutated
//   - DisplayName is 1..64 bytes, Description 1..128 bytes
//   - ByteSize is strictly between 0 and 1_000_000_000
//   - Labels holds 1..10 tags, each 1..32 bytes
//   - CreatedAt is the logical height at creation and immutable thereafter
//   - Custodian is always a valid identity, initially the creator
//
// Custody and access grants are independent: transferring custody neither
// creates nor revokes grant rows. The new custodian reads through the
// custodian bypass in the authorization rule, not through a grant.
type Document struct {
	ID          id.DocumentID `json:"id"`
	DisplayName string        `json:"display_name"`
	Custodian   id.Identity   `json:"custodian"`
	ByteSize    uint64        `json:"byte_size"`
	CreatedAt   uint64        `json:"created_at"`
	Description string        `json:"description"`
	Labels      []string      `json:"labels"`
}

// ValidateFields checks the four caller-supplied fields shared by creation
// and update. Every field is checked before the first error is returned so
// no partial validation can precede a mutation.
func ValidateFields(displayName string, byteSize uint64, description string, labels []string) error {
	if !ValidText(displayName, 1, MaxDisplayNameLen+1) {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "display name must be between 1 and %d characters", MaxDisplayNameLen)
	}
	if !ValidByteSize(byteSize) {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "byte size must be greater than 0 and less than %d", uint64(MaxByteSize))
	}
	if !ValidText(description, 1, MaxDescriptionLen+1) {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "description must be between 1 and %d characters", MaxDescriptionLen)
	}
	if !ValidLabelSet(labels) {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "labels must hold 1 to %d tags of 1 to %d characters each", MaxLabelCount, MaxLabelLen)
	}
	return nil
}

// NewDocument constructs a document record, validating all field invariants.
// The id comes from the registry counter and createdAt from the logical
// height of the creating call.
func NewDocument(documentID id.DocumentID, displayName string, custodian id.Identity, byteSize uint64, createdAt uint64, description string, labels []string) (*Document, error) {
	if documentID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "document id cannot be zero")
	}
	if custodian.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "custodian identity cannot be nil")
	}
	if err := ValidateFields(displayName, byteSize, description, labels); err != nil {
		return nil, err
	}
	doc := &Document{
		ID:          documentID,
		DisplayName: displayName,
		Custodian:   custodian,
		ByteSize:    byteSize,
		CreatedAt:   createdAt,
		Description: description,
		Labels:      append([]string(nil), labels...),
	}
	return doc, nil
}

// IsCustodiedBy reports whether the candidate currently holds custody.
func (d *Document) IsCustodiedBy(candidate id.Identity) bool {
	return d.Custodian == candidate
}

// CanMutate checks the custodian-only gate for update, transfer, delete and
// revoke. Returns an error when the caller is not the current custodian.
// Use with ApplyUpdate/ApplyTransfer for the check-then-apply pattern.
func (d *Document) CanMutate(caller id.Identity) error {
	if !d.IsCustodiedBy(caller) {
		return dErrors.New(dErrors.CodeOwnershipVerification, "caller is not the document custodian")
	}
	return nil
}

// ApplyUpdate replaces the four mutable metadata fields. ID, Custodian and
// CreatedAt are untouched. Call ValidateFields and CanMutate first.
func (d *Document) ApplyUpdate(displayName string, byteSize uint64, description string, labels []string) {
	d.DisplayName = displayName
	d.ByteSize = byteSize
	d.Description = description
	d.Labels = append([]string(nil), labels...)
}

// ApplyTransfer hands custody to a new identity. Grant rows are unaffected.
func (d *Document) ApplyTransfer(newCustodian id.Identity) {
	d.Custodian = newCustodian
}

// Clone returns a deep copy so stores can hand out records without aliasing
// their internal state.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Labels = append([]string(nil), d.Labels...)
	return &c
}
