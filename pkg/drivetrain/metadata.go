// Package drivetrain provides the reflection metadata of the native
// drivetrain object model. The wrapper packages design and analyses are
// generated from it.
package drivetrain

import (
	_ "embed"

	"github.com/mandelsoft/drivebind/pkg/metadata"
)

//go:generate go run ../../cmds/bindgen generate --metadata metadata.yaml --output . --base github.com/mandelsoft/drivebind/pkg/drivetrain

//go:embed metadata.yaml
var data []byte

// Metadata returns a freshly parsed copy of the drivetrain metadata.
func Metadata() (*metadata.Model, error) {
	return metadata.Parse(data)
}

// MustMetadata is Metadata for callers relying on the embedded
// document being valid.
func MustMetadata() *metadata.Model {
	m, err := Metadata()
	if err != nil {
		panic(err)
	}
	return m
}

// Data returns the raw metadata document.
func Data() []byte {
	return data
}
