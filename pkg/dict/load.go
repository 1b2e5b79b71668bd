package dict

import (
	"bufio"
	_ "embed"
	"io"
	"strconv"
	"strings"

	"github.com/bastiangx/fenci/internal/logger"
)

var log = logger.New("dict")

//go:embed data/dict.txt
var embeddedDict string

// New returns a Dict pre-loaded with the module's embedded default
// dictionary. This never fails: the embedded file is validated at build
// time by this module's own tests.
func New() *Dict {
	d := Empty()
	if err := d.Load(strings.NewReader(embeddedDict)); err != nil {
		panic("dict: embedded default dictionary failed to load: " + err.Error())
	}
	log.Debugf("loaded embedded dictionary, %d words, total freq %d", len(d.records), d.Total())
	return d
}

// Load reads dictionary entries from r and inserts them, one per
// non-empty line. Each line is whitespace-split into word, freq, and an
// optional tag. A missing freq defaults to 0; a missing tag defaults to
// "". A line whose freq field isn't a valid non-negative integer returns
// *InvalidDictEntry, naming the line number and raw content. I/O failures
// from r are wrapped in *IOError.
func (d *Dict) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	// Dictionary lines can be long for compound entries; grow past the
	// default 64KiB token limit just in case.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		word := fields[0]
		freq := 0
		tag := ""
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 {
				return &InvalidDictEntry{
					Line:    lineNo,
					Content: line,
					Reason:  "freq is not a non-negative integer",
				}
			}
			freq = n
		}
		if len(fields) > 2 {
			tag = fields[2]
		}
		d.Insert(word, freq, tag)
	}
	if err := scanner.Err(); err != nil {
		return &IOError{Err: err}
	}
	log.Debugf("loaded %d dictionary lines", lineNo)
	return nil
}
