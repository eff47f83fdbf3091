package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-masw/peaks"
)

func isParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}

func readSuite(path string) (*peaks.Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if isParquet(path) {
		return peaks.ReadParquet(f)
	}
	return peaks.ReadJSON(f)
}

func writeSuite(path string, s *peaks.Suite) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if isParquet(path) {
		err = s.WriteParquet(f)
	} else {
		err = s.WriteJSON(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
