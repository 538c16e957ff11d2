package commands

import (
	"fmt"
	"text/tabwriter"

	envfileUseCase "github.com/allisson/envseal/internal/envfile/usecase"
)

// RunStatus prints a table of the environment file's entries: name, whether
// the value is sealed, and the sealing algorithm. No secret material is shown.
func RunStatus(envUseCase envfileUseCase.EnvUseCase, io IOTuple) error {
	status, err := envUseCase.Status()
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}

	w := tabwriter.NewWriter(io.Writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSEALED\tALGORITHM")
	for _, entry := range status {
		algorithm := "-"
		if entry.Algorithm != "" {
			algorithm = string(entry.Algorithm)
		}
		fmt.Fprintf(w, "%s\t%t\t%s\n", entry.Name, entry.Sealed, algorithm)
	}
	return w.Flush()
}
