package voc

import (
	"bufio"
	"fmt"
	"io"
)

// WriteSummary writes one line per retained image: identifier, file
// name, size and object count, tab separated.
func (d *Index) WriteSummary(w io.Writer) error {
	buf := bufio.NewWriter(w)
	for i, info := range d.imgInfos {
		fmt.Fprintf(buf, "%s\t%s\t%dx%d\t%d\n",
			info.ID, info.FileName, info.Width, info.Height, len(d.anns[i]))
	}
	return buf.Flush()
}
