package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"MerlinsForkAPI/internal/api/router"

	"github.com/spf13/cobra"
)

// routesCmd prints the route table and every registered HTTP route
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		builder, err := router.NewBuilder(cfg).WithAllRoutes().Build()
		if err != nil {
			return err
		}
		r := builder.GetRouter()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PREFIX\tNAME")
		for _, e := range r.Table().Entries() {
			fmt.Fprintf(w, "%s\t%s\n", e.Prefix, e.Name)
		}
		fmt.Fprintln(w)

		routes := r.Engine().Routes()
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path != routes[j].Path {
				return routes[i].Path < routes[j].Path
			}
			return routes[i].Method < routes[j].Method
		})
		fmt.Fprintln(w, "METHOD\tPATH")
		for _, route := range routes {
			fmt.Fprintf(w, "%s\t%s\n", route.Method, route.Path)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
