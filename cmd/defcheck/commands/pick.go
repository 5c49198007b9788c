package commands

import (
	"slices"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/defcheck/internal/errors"
	"github.com/thoreinstein/defcheck/pkg/fileutil"
)

// findFiles presents files in a fuzzy finder and returns the chosen indices.
// Replaced in tests.
var findFiles = func(files []string) ([]int, error) {
	return fuzzyfinder.FindMulti(
		files,
		func(i int) string {
			return files[i]
		},
		fuzzyfinder.WithHeader("Tab to select, Enter to validate"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			data, err := fileutil.ReadFileWithLimit(files[i])
			if err != nil {
				return err.Error()
			}
			return string(data)
		}),
	)
}

// pickFiles lets the user narrow files down interactively. Aborting the
// finder selects nothing.
func pickFiles(files []string) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	idx, err := findFiles(files)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	picked := make([]string, 0, len(idx))
	for _, i := range idx {
		picked = append(picked, files[i])
	}
	slices.Sort(picked)
	return picked, nil
}
