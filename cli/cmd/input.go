package cmd

import (
	"io"
	"os"

	"github.com/ardnew/mung"

	"github.com/nuposix/nuposix/pkg"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSources reads each source file (or stdin for "-") and joins the
// fragments into the single text blob the converter expects. Separately
// delivered fragments are always joined with newline separators.
func readSources(sources []string) (string, error) {
	fragments := make([]string, 0, len(sources))

	for _, src := range sources {
		text, err := readSource(src)
		if err != nil {
			return "", err
		}

		fragments = append(fragments, text)
	}

	return joinFragments(fragments), nil
}

// readSource reads one named source in full.
func readSource(src string) (string, error) {
	var r io.Reader = os.Stdin

	if src != stdinSource {
		file, err := os.Open(src)
		if err != nil {
			return "", pkg.ErrReadInput.Wrap(err)
		}
		defer file.Close()

		r = file
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", pkg.ErrReadInput.Wrap(err)
	}

	return string(data), nil
}

// joinFragments joins text fragments with newline separators.
func joinFragments(fragments []string) string {
	switch len(fragments) {
	case 0:
		return ""
	case 1:
		return fragments[0]
	}

	return mung.Make(
		mung.WithSubjectItems(fragments...),
		mung.WithDelim("\n"),
	).String()
}
