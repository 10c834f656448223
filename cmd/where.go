package cmd

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/puppetlabs/are/are"
	"github.com/puppetlabs/are/cmd/internal/config"
	cmdutil "github.com/puppetlabs/are/cmd/util"
	arelog "github.com/puppetlabs/are/log"
	"github.com/puppetlabs/are/predicate"
	"github.com/puppetlabs/are/table"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func whereCommand() *cobra.Command {
	whereCmd := &cobra.Command{
		Use:   "where <file> <label> <predicate> [<operand>...]",
		Short: "Prints the rows whose <label> value satisfies <predicate>",
		Long: `Loads the table in <file> (.csv, .yaml or .yml) and prints the rows whose
value in the <label> column satisfies <predicate>. Number and date columns
accept the comparison predicates. Text columns accept the comparison
predicates and the containment predicates. Run 'are list' to see every predicate and the number
of operands it takes.`,
		Example: `  are where sizes.csv Waists between_or_equal_to 30 38
  are where sizes.csv Sizes contained_in MXL
  are where orders.csv Placed above 2019-02-01
  are where sizes.yaml Sizes matching '*L' --negate`,
		Args: cobra.MinimumNArgs(3),
		RunE: toRunE(whereMain),
	}

	whereCmd.Flags().Bool("negate", false, "Print the rows that do not satisfy <predicate>")
	whereCmd.Flags().Bool("exact", false, "Compare numbers as exact decimals")
	whereCmd.Flags().Bool("trace", false, "Log every evaluation of <predicate>")
	whereCmd.Flags().StringP("output", "o", cmdutil.Table, "Set the output format (table, json or yaml)")
	if err := viper.BindPFlag(config.ExactKey, whereCmd.Flags().Lookup("exact")); err != nil {
		panic(err)
	}

	return whereCmd
}

type whereOptions struct {
	negate bool
	exact  bool
	trace  bool
}

func whereMain(cmd *cobra.Command, args []string) exitCode {
	file, label, name, operands := args[0], args[1], args[2], args[3:]

	negate, err := cmd.Flags().GetBool("negate")
	if err != nil {
		panic(err.Error())
	}
	trace, err := cmd.Flags().GetBool("trace")
	if err != nil {
		panic(err.Error())
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		panic(err.Error())
	}
	var marshaller cmdutil.Marshaller
	if output != cmdutil.Table {
		if marshaller, err = cmdutil.NewMarshaller(output); err != nil {
			cmdutil.ErrPrintf("%v\n", err)
			return exitCode{1}
		}
	}
	opts := whereOptions{
		negate: negate,
		exact:  viper.GetBool(config.ExactKey),
		trace:  trace,
	}
	if opts.trace {
		arelog.EnsureLevel(log.DebugLevel)
	}

	t, err := loadTable(file)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	log.Debugf("Loaded %v rows and %v columns from %v", t.NumRows(), t.NumColumns(), file)

	kind, err := t.Kind(label)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	c, err := buildCondition(kind, name, operands, opts)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}

	selected, err := t.Where(label, c)
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	log.Infof("Selected %v of %v rows", selected.NumRows(), t.NumRows())

	if marshaller == nil {
		cmdutil.Print(formatTable(selected))
		return exitCode{0}
	}
	out, err := marshaller.Marshal(columnsOf(selected))
	if err != nil {
		cmdutil.ErrPrintf("%v\n", err)
		return exitCode{1}
	}
	cmdutil.Println(strings.TrimSuffix(out, "\n"))
	return exitCode{0}
}

func loadTable(file string) (*table.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return table.ReadCSV(f)
	case ".yaml", ".yml":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return table.ReadYAML(data)
	default:
		return nil, errors.Errorf("%v: unsupported table format %q, expected .csv, .yaml or .yml", file, ext)
	}
}

// arity returns the number of operands taken by the named predicate, or 0
// if there is no such predicate.
func arity(name string) int {
	if _, ok := are.Float64.Unary(name); ok {
		return 1
	}
	if _, ok := are.Text.Unary(name); ok {
		return 1
	}
	if _, ok := are.Float64.Binary(name); ok {
		return 2
	}
	return 0
}

func buildCondition(kind table.Kind, name string, operands []string, opts whereOptions) (predicate.Condition, error) {
	n := arity(name)
	if n == 0 {
		return nil, errors.Errorf("unknown predicate %q, run 'are list' to see the available predicates", name)
	}
	if len(operands) != n {
		return nil, errors.Errorf("%v takes %v operand(s), got %v", name, n, len(operands))
	}

	_, isContainment := are.Text.Unary(name)
	switch {
	case (kind == table.Number || kind == table.Time) && isContainment:
		return nil, errors.Errorf("%v only applies to text columns", name)
	case kind == table.Number && opts.exact:
		ds, err := parseDecimals(operands)
		if err != nil {
			return nil, err
		}
		p, err := comparison(are.Decimal, name, ds)
		if err != nil {
			return nil, err
		}
		// NaN and the infinities have no decimal value, so they satisfy
		// neither p nor its negation.
		return finite.And(finish(predicate.On(decimal.NewFromFloat, p), name, opts)), nil
	case kind == table.Time:
		ts, err := parseTimes(operands)
		if err != nil {
			return nil, err
		}
		p, err := comparison(are.Time, name, ts)
		if err != nil {
			return nil, err
		}
		return finish(p, name, opts), nil
	case kind == table.Number:
		fs, err := parseFloats(operands)
		if err != nil {
			return nil, err
		}
		p, err := comparison(are.Float64, name, fs)
		if err != nil {
			return nil, err
		}
		return finish(p, name, opts), nil
	case isContainment:
		if name == are.MatchingName || name == are.NotMatchingName {
			if err := are.CompileGlob(operands[0]); err != nil {
				return nil, errors.Wrapf(err, "invalid %v pattern %q", name, operands[0])
			}
		}
		f, _ := are.Text.Unary(name)
		return finish(f(operands[0]), name, opts), nil
	default:
		p, err := comparison(are.String, name, operands)
		if err != nil {
			return nil, err
		}
		return finish(p, name, opts), nil
	}
}

// comparison builds the named predicate from c. The caller checks the
// operand count.
func comparison[T any](c *are.Comparison[T], name string, operands []T) (predicate.Predicate[T], error) {
	if f, ok := c.Unary(name); ok {
		return f(operands[0]), nil
	}
	if f, ok := c.Binary(name); ok {
		return f(operands[0], operands[1]), nil
	}
	return nil, errors.Errorf("%v is not a comparison predicate", name)
}

var finite = predicate.Predicate[float64](func(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
})

func finish[T any](p predicate.Predicate[T], name string, opts whereOptions) predicate.Predicate[T] {
	if opts.negate {
		p = p.Negate()
		name = "not " + name
	}
	if opts.trace {
		p = p.Trace(name, log.StandardLogger())
	}
	return p
}

func parseFloats(operands []string) ([]float64, error) {
	fs := make([]float64, len(operands))
	for i, operand := range operands {
		f, err := strconv.ParseFloat(operand, 64)
		if err != nil {
			return nil, errors.Errorf("%q is not a number", operand)
		}
		fs[i] = f
	}
	return fs, nil
}

func parseTimes(operands []string) ([]time.Time, error) {
	ts := make([]time.Time, len(operands))
	for i, operand := range operands {
		t, err := table.ParseTime(operand)
		if err != nil {
			return nil, errors.Errorf("%q is not a date", operand)
		}
		ts[i] = t
	}
	return ts, nil
}

func parseDecimals(operands []string) ([]decimal.Decimal, error) {
	ds := make([]decimal.Decimal, len(operands))
	for i, operand := range operands {
		d, err := decimal.NewFromString(operand)
		if err != nil {
			return nil, errors.Wrapf(err, "%q is not a decimal", operand)
		}
		ds[i] = d
	}
	return ds, nil
}

func formatTable(t *table.Table) string {
	rows := make([][]string, 0, t.NumRows())
	for _, row := range t.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cmdutil.FormatCell(v)
		}
		rows = append(rows, cells)
	}
	return cmdutil.FormatTable(cmdutil.Headers(t.Labels()...), rows)
}

type column struct {
	Label  string        `json:"label"`
	Values []interface{} `json:"values"`
}

// columnsOf returns t in the layout read by table.ReadYAML.
func columnsOf(t *table.Table) []column {
	columns := []column{}
	for _, label := range t.Labels() {
		values, _ := t.Column(label)
		columns = append(columns, column{Label: label, Values: values})
	}
	return columns
}
