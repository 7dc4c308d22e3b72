package commands

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"xmlstring"
)

// "-" selects standard input, which is reported under stdinName.
const (
	stdinArg  = "-"
	stdinName = "<stdin>"
)

var errIsDirectory = errors.New("is a directory")

type result struct {
	name string
	xml  bool
	err  error
}

// sniffer checks named inputs on fs. Standard input is read at most once,
// however many times "-" is given.
type sniffer struct {
	fs    afero.Fs
	stdin io.Reader
	log   *slog.Logger

	stdinOnce sync.Once
	stdinHead []byte
	stdinErr  error
}

func (s *sniffer) sniffAll(inputs []string, jobs int) []result {
	results := make([]result, len(inputs))

	var g errgroup.Group
	g.SetLimit(jobs)

	for i, input := range inputs {
		i, input := i, input // per-iteration copies; go directive predates Go 1.22 loop semantics
		g.Go(func() error {
			results[i] = s.sniff(input)
			return nil
		})
	}

	_ = g.Wait()

	return results
}

func (s *sniffer) sniff(input string) result {
	res := result{name: input}

	var head []byte
	if input == stdinArg {
		res.name = stdinName
		head, res.err = s.readStdin()
	} else {
		head, res.err = s.readFile(input)
	}

	if res.err != nil {
		s.log.Error("cannot read input", "input", res.name, "error", res.err)
		return res
	}

	res.xml = xmlstring.IsXML(head)
	s.log.Debug("sniffed input", "input", res.name, "xml", res.xml, "empty", len(head) == 0)

	return res
}

func (s *sniffer) readStdin() ([]byte, error) {
	s.stdinOnce.Do(func() {
		s.stdinHead, s.stdinErr = readHead(s.stdin)
	})

	return s.stdinHead, s.stdinErr
}

func (s *sniffer) readFile(name string) ([]byte, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return nil, errIsDirectory
	}

	return readHead(f)
}

// readHead returns the first byte of r, or an empty slice when r has none.
func readHead(r io.Reader) ([]byte, error) {
	buf := make([]byte, 1)

	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) {
		return buf[:0], nil
	}

	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
