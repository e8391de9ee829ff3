package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/compiler"
)

// BuildJSON serializes a compile result for the HTTP surface.
func BuildJSON(res compiler.Result) []byte {
	b, _ := json.Marshal(res)
	return b
}
