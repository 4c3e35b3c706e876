// Command ocrfields extracts normalized field values from multi-model OCR
// output using zone templates.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
