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
	"github.com/spf13/cobra"
)

func newGridCommand(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "grid <DD-MM-YYYY> <male|female>",
		Short: "Compute one reading",
		Example: `  loshu grid 22-10-1991 male
  loshu grid 01-01-2000 female --name alice -o yaml`,
		Args: cobra.ExactArgs(2),
	}
	cmd.Flags().StringVar(&name, "name", "", "Name recorded on the reading")

	cmd.RunE = a.withMetrics(func(cmd *cobra.Command, args []string) error {
		r, err := a.renderer()
		if err != nil {
			return err
		}
		reading, err := a.engine.Compute(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return r.RenderReading(cmd.OutOrStdout(), reading.ToAPI(name))
	})
	return cmd
}
