package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readSource reads a WhileProc source file. The file is expected to be
// UTF-8; a byte order mark is stripped, and files with a UTF-16 BOM are
// converted.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return decodeSource(f)
}

func decodeSource(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("cannot decode source: %w", err)
	}
	return string(b), nil
}
