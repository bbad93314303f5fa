package leakradar

import (
	"fmt"
	"os"
)

// WriteExport writes raw export bytes to a file with 0600 permissions,
// without any transformation. The file content is byte-identical to the
// response body returned by the export methods.
func WriteExport(data []byte, path string) error {
	if data == nil {
		return fmt.Errorf("export data is nil")
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
