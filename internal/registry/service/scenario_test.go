package service

import (
	"context"

	id "docregistry/pkg/domain"
	dErrors "docregistry/pkg/domain-errors"
)

// TestDocumentLifecycleScenario walks one document through its whole life:
// create, update, custody transfer, reads by each party, and deletion.
func (s *ServiceSuite) TestDocumentLifecycleScenario() {
	creator := id.NewIdentity()   // A
	successor := id.NewIdentity() // B
	outsider := id.NewIdentity()  // C, never granted

	// A creates the document at height 100.
	docID, err := s.service.Create(s.asCaller(creator, 100), "doc", 100, "initial description", []string{"a"})
	s.Require().NoError(err)
	s.Equal(id.DocumentID(1), docID)

	// A updates it: byteSize 200, two labels.
	err = s.service.Update(s.asCaller(creator, 101), docID, "newName", 200, "newDesc", []string{"a", "b"})
	s.Require().NoError(err)

	doc, err := s.service.GetDocument(s.asCaller(creator, 102), docID)
	s.Require().NoError(err)
	s.Equal(uint64(200), doc.ByteSize)
	s.Len(doc.Labels, 2)
	s.Equal(uint64(100), doc.CreatedAt)

	// A hands custody to B.
	err = s.service.TransferCustody(s.asCaller(creator, 103), docID, successor)
	s.Require().NoError(err)

	// A can no longer mutate.
	err = s.service.Update(s.asCaller(creator, 104), docID, "stale", 300, "desc", []string{"a"})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeOwnershipVerification))

	// B reads through the custodian bypass despite having no grant row.
	granted, err := s.service.CheckViewingPermission(context.Background(), docID, successor)
	s.Require().NoError(err)
	s.False(granted)

	doc, err = s.service.GetDocument(s.asCaller(successor, 105), docID)
	s.Require().NoError(err)
	s.Equal(successor, doc.Custodian)

	// C has no path in.
	_, err = s.service.GetDocument(s.asCaller(outsider, 106), docID)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeAccessDenied))

	// B deletes the document.
	err = s.service.Delete(s.asCaller(successor, 107), docID)
	s.Require().NoError(err)

	// Now gone for everyone, including the administrator.
	for _, caller := range []id.Identity{creator, successor, outsider, s.admin} {
		_, err = s.service.GetDocument(s.asCaller(caller, 108), docID)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	}

	// The counter still remembers the creation.
	stats, err := s.service.GetStatistics(context.Background())
	s.Require().NoError(err)
	s.Equal(uint64(1), stats.TotalDocuments)
}
