package config

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
)

const DefaultRegionsFile = "regions.txt"

// ReadRegionsFile returns the regions listed in path, one per line. The file is required; a file
// that cannot be read or lists no regions is an error.
func ReadRegionsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStackTrace(RegionsFileError{FilePath: path, Underlying: err})
	}
	defer file.Close()

	regions, err := ParseRegions(file)
	if err != nil {
		return nil, errors.WithStackTrace(RegionsFileError{FilePath: path, Underlying: err})
	}
	if len(regions) == 0 {
		return nil, errors.WithStackTrace(RegionsFileError{FilePath: path, Underlying: ErrNoRegions})
	}
	return regions, nil
}

// ParseRegions reads newline delimited region names, trimming whitespace and skipping blank lines.
func ParseRegions(r io.Reader) ([]string, error) {
	var regions []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		region := strings.TrimSpace(scanner.Text())
		if region == "" {
			continue
		}
		regions = append(regions, region)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return regions, nil
}
