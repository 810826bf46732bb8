// Package mod loads the source files of a Forest program.
package mod

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the extension of Forest source files.
const Ext = ".fst"

// A Mod contains information about the source of a single program.
type Mod struct {
	// Name is the base file name of SrcPath without the extension.
	Name string
	// SrcPath is the source file path.
	// This is path to the source file or directory of the program.
	SrcPath string
	// SrcDir may differ from SrcPath
	// if the program is given as a .fst file, not a directory.
	SrcDir string
	// SrcFiles contains the source file paths in alphabetical order.
	SrcFiles []string
}

// A Source is the text of a source file.
type Source struct {
	Path string
	Text string
}

// Load returns a *Mod loaded from srcPath.
// srcPath may be either a .fst source file or a directory of .fst source files.
func Load(srcPath string) (*Mod, error) {
	srcPath, err := realPath(srcPath)
	if err != nil {
		return nil, err
	}
	srcFiles, srcDir, err := srcFiles(srcPath)
	if err != nil {
		return nil, err
	}
	return &Mod{
		Name:     strings.TrimSuffix(filepath.Base(srcPath), Ext),
		SrcPath:  srcPath,
		SrcDir:   srcDir,
		SrcFiles: srcFiles,
	}, nil
}

// Read returns the text of each source file, in the order of SrcFiles.
func (m *Mod) Read() ([]Source, error) {
	var srcs []Source
	for _, path := range m.SrcFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, Source{Path: path, Text: string(data)})
	}
	return srcs, nil
}

func realPath(dir string) (string, error) {
	switch dir {
	case string([]rune{filepath.Separator}):
		return dir, nil
	case ".":
		return os.Getwd()
	default:
		base := filepath.Base(dir)
		dir, err := realPath(filepath.Dir(dir))
		if err != nil {
			return "", err
		}
		switch base {
		case ".":
			return dir, nil
		case "..":
			return filepath.Dir(dir), nil
		default:
			return filepath.Join(dir, base), nil
		}
	}
}

func srcFiles(srcPath string) ([]string, string, error) {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return nil, "", err
	}
	defer srcFile.Close()
	stat, err := srcFile.Stat()
	if err != nil {
		return nil, "", err
	}
	if !stat.IsDir() {
		if !strings.HasSuffix(srcPath, Ext) {
			return nil, "", fmt.Errorf("%s: not a %s file", srcPath, Ext)
		}
		return []string{srcPath}, filepath.Dir(srcPath), nil
	}
	finfos, err := srcFile.Readdir(-1)
	if err != nil {
		return nil, "", err
	}
	var paths []string
	for _, finfo := range finfos {
		if finfo.IsDir() || !strings.HasSuffix(finfo.Name(), Ext) {
			continue
		}
		paths = append(paths, filepath.Join(srcPath, finfo.Name()))
	}
	sort.Strings(paths)
	return paths, srcPath, nil
}
