package mock

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var defaultContents = []string{
	"This is a random response 1.",
	"This is a random response 2.",
	"This is a random response 3.",
}

// LoadContents reads the canned completion contents used by the "random"
// selection mode. With an empty path it returns the built-in defaults. A
// .yaml/.yml file is parsed as a list of strings; any other file is read one
// response per line.
func LoadContents(path string) ([]string, error) {
	if path == "" {
		return defaultContents, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var contents []string
		if err := yaml.Unmarshal(raw, &contents); err != nil {
			return nil, err
		}
		return contents, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var contents []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		contents = append(contents, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return contents, nil
}
