// Package thing provides the entities placed in a world and the embedded
// kind definitions they are built from.
package thing

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
