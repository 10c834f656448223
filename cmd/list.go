package cmd

import (
	"sort"
	"strconv"

	"github.com/puppetlabs/are/are"
	cmdutil "github.com/puppetlabs/are/cmd/util"
	"github.com/spf13/cobra"
)

func listCommand() *cobra.Command {
	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Lists the predicates accepted by 'are where'",
		Args:    cobra.NoArgs,
		RunE:    toRunE(listMain),
	}
	return listCmd
}

func listMain(cmd *cobra.Command, args []string) exitCode {
	headers := []cmdutil.ColumnHeader{
		{ShortName: "name", FullName: "NAME"},
		{ShortName: "operands", FullName: "OPERANDS"},
		{ShortName: "columns", FullName: "COLUMNS"},
	}
	cmdutil.Print(cmdutil.FormatTable(headers, predicateRows()))
	return exitCode{0}
}

func predicateRows() [][]string {
	var rows [][]string
	add := func(names []string, columns string) {
		for _, name := range names {
			rows = append(rows, []string{name, strconv.Itoa(arity(name)), columns})
		}
	}
	add(are.Float64.UnaryNames(), "number, text, time")
	add(are.Float64.BinaryNames(), "number, text, time")
	add(are.Text.Names(), "text")

	sort.Slice(rows, func(i, j int) bool {
		return rows[i][0] < rows[j][0]
	})
	return rows
}
