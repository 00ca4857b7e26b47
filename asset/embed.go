package asset

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed data
var embedded embed.FS

// Default returns the built-in asset directory
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Dir returns dir as an asset directory, or the built-in assets when dir is empty
func Dir(dir string) fs.FS {
	if dir == "" {
		return Default()
	}
	return os.DirFS(dir)
}
