//go:build amd64 && !purego
// +build amd64,!purego

package enc

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasSSE2 {
		translateBlock = translateSSE2
		translatorName = "sse2"
	}
}

// translateSSE2 classifies all sixteen lanes of src in one XMM register.
//
//go:noescape
func translateSSE2(dst, src *Block, t *laneTable)
