/*
Copyright 2025 The loshu-grid Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/numerology-dev/loshu-grid/api/v1alpha1"
	"github.com/numerology-dev/loshu-grid/internal/config"
)

func newBatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml|->",
		Short: "Compute readings for every entry of a batch file",
		Long: `batch reads a YAML document of the form

  defaults:
    gender: female
  readings:
    - name: alice
      dob: 22-10-1991
      gender: male
    - dob: 01-01-2000

and renders one reading per entry. Entries that fail are logged and skipped;
the command exits non-zero if any entry failed. Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
	}

	cmd.RunE = a.withMetrics(func(cmd *cobra.Command, args []string) error {
		logger := logr.FromContextOrDiscard(cmd.Context())

		r, err := a.renderer()
		if err != nil {
			return err
		}
		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		entries, err := config.ParseBatch(data)
		if err != nil {
			return err
		}

		items := make([]v1alpha1.LoShuReading, 0, len(entries))
		failed := 0
		for _, entry := range entries {
			reading, err := a.engine.Compute(cmd.Context(), entry.DateOfBirth, entry.Gender)
			if err != nil {
				failed++
				logger.Error(err, "Failed to compute reading", "name", entry.Name, "dob", entry.DateOfBirth)
				continue
			}
			items = append(items, *reading.ToAPI(entry.Name))
		}

		logger.Info("Batch complete", "readings", len(items), "failed", failed)

		if len(items) > 0 {
			if err := r.RenderList(cmd.OutOrStdout(), v1alpha1.NewLoShuReadingList(items...)); err != nil {
				return err
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d readings failed", failed, len(entries))
		}
		return nil
	})
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	return data, nil
}
