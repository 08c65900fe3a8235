package storage

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// TestCaseFiles is one input/output pair of an archive.
type TestCaseFiles struct {
	Input  string
	Output string
}

// BuildTestCaseTarGz writes the pairs to a temporary tar.gz and returns its path.
// Pair i is stored as in/<i> and out/<i>, whatever the source file names are.
// The caller removes the file.
func BuildTestCaseTarGz(cases []TestCaseFiles) (string, error) {
	tempFile, err := os.CreateTemp("", "testcase*.tar.gz")
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	gzipWriter := gzip.NewWriter(tempFile)
	tarWriter := tar.NewWriter(gzipWriter)

	for i, c := range cases {
		for dir, fpath := range map[string]string{"in": c.Input, "out": c.Output} {
			if err := addFile(tarWriter, fmt.Sprintf("%s/%d", dir, i), fpath); err != nil {
				_ = os.Remove(tempFile.Name())
				return "", err
			}
		}
	}

	if err := tarWriter.Close(); err != nil {
		_ = os.Remove(tempFile.Name())
		return "", err
	}
	if err := gzipWriter.Close(); err != nil {
		_ = os.Remove(tempFile.Name())
		return "", err
	}
	return tempFile.Name(), nil
}

func addFile(tarWriter *tar.Writer, name, fpath string) error {
	file, err := os.Open(fpath)
	if err != nil {
		return err
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return err
	}

	header := &tar.Header{
		Name: name,
		Size: fileInfo.Size(),
		Mode: 0600,
	}
	if err := tarWriter.WriteHeader(header); err != nil {
		return err
	}
	_, err = io.Copy(tarWriter, file)
	return err
}
