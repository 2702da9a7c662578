// Common package contains the small helpers shared by the chain reader and
// the alignment code: FASTA record streaming and byte reversal.
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reverse returns a reversed copy of seq.
func Reverse(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[len(seq)-1-i] = b
	}
	return out
}

type FastaHandler func(id string, seq string, opts map[string]interface{}) error

// StreamFastaWithOpts streams the records of a FASTA file, plain or gzipped,
// into handler. Gzip is detected from the magic bytes, not the file name.
//
// Recognised opts:
//
//	"keep_blanks" (bool)  keep spaces inside sequence lines. RCSB ss.txt
//	                      secstr records use a blank for "no assignment",
//	                      so those must survive; only line endings are cut.
//	"raw_case"    (bool)  do not upper-case sequence lines.
func StreamFastaWithOpts(file string, handler FastaHandler, opts map[string]interface{}) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err == nil && buf[0] == 0x1F && buf[1] == 0x8B {
		f.Seek(0, io.SeekStart)
		gr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	} else {
		f.Seek(0, io.SeekStart)
	}
	return StreamFastaReader(reader, handler, opts)
}

// StreamFastaReader is StreamFastaWithOpts for an already open reader.
func StreamFastaReader(r io.Reader, handler FastaHandler, opts map[string]interface{}) error {
	keepBlanks, _ := opts["keep_blanks"].(bool)
	rawCase, _ := opts["raw_case"].(bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var currentID string
	var buffer []byte
	seen := false

	flush := func() error {
		if !seen {
			return nil
		}
		if err := handler(currentID, string(buffer), opts); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		raw := strings.TrimRight(scanner.Text(), "\r\n")
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, ">") {
			if err := flush(); err != nil {
				return err
			}
			currentID = strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
			buffer = buffer[:0]
			seen = true
			continue
		}
		line := trimmed
		if keepBlanks {
			line = raw
		}
		if !rawCase {
			line = strings.ToUpper(line)
		}
		buffer = append(buffer, line...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}
