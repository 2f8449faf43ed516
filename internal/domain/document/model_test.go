package document

import (
	"testing"

	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFile(t *testing.T) {
	cases := map[string]FileClass{
		"quote.PDF":      ClassPDF,
		"roof.jpeg":      ClassImages,
		"plan.docx":      ClassDocuments,
		"export.csv":     ClassDocuments,
		"firmware.bin":   ClassOther,
		"no-extension":   ClassOther,
		"archive.tar.gz": ClassOther,
	}
	for name, want := range cases {
		assert.Equal(t, want, ClassifyFile(name), name)
	}
	assert.Equal(t, ClassImages, ClassifyExtension(".PNG"))
}

func TestParseFileClass(t *testing.T) {
	assert.Equal(t, ClassPDF, ParseFileClass(" PDF "))
	assert.Equal(t, ClassAll, ParseFileClass(""))
	assert.Equal(t, ClassAll, ParseFileClass("videos"))
}

func TestFormDocumentDisplayName(t *testing.T) {
	doc := FormDocument{FormName: "Intake"}
	assert.Equal(t, "Intake", doc.DisplayName())

	blank := "  "
	doc.Title = &blank
	assert.Equal(t, "Intake", doc.DisplayName())

	title := "Roof survey"
	doc.Title = &title
	assert.Equal(t, "Roof survey", doc.DisplayName())
}

func TestUploadedFileOwner(t *testing.T) {
	ref, err := UploadedFile{ModuleType: "ServiceOrder", ModuleID: 5}.Owner()
	require.NoError(t, err)
	assert.Equal(t, entity.NewRef(entity.TypeServiceOrder, 5), ref)

	_, err = UploadedFile{ModuleType: "ticket", ModuleID: 5}.Owner()
	assert.Error(t, err)
}

func TestAttachmentViewReadOnly(t *testing.T) {
	assert.False(t, AttachmentView{}.ReadOnly())
	assert.True(t, AttachmentView{Origin: "Dispatch"}.ReadOnly())
}
