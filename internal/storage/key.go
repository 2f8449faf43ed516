package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/linskybing/workflow-go/internal/domain/entity"
)

// ObjectKey places a file under <module_type>/<module_id>/<file_id><ext>.
func ObjectKey(owner entity.EntityRef, fileID, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return fmt.Sprintf("%s/%d/%s%s", owner.EntityType, owner.EntityID, fileID, ext)
}
