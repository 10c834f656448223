package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/puppetlabs/are/table"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

const sizesCSV = `Sizes,Waists
S,30
M,34
L,38
XL,42
`

const sizesYAML = `
- label: Sizes
  values: [S, M, L, XL]
- label: Waists
  values: [30, 34, 38, 42]
`

type WhereTestSuite struct {
	commandSuite
	csv   string
	yaml  string
	level log.Level
}

func (suite *WhereTestSuite) SetupTest() {
	suite.commandSuite.SetupTest()
	suite.level = log.GetLevel()

	dir := suite.T().TempDir()
	suite.csv = filepath.Join(dir, "sizes.csv")
	suite.Require().NoError(os.WriteFile(suite.csv, []byte(sizesCSV), 0644))
	suite.yaml = filepath.Join(dir, "sizes.yaml")
	suite.Require().NoError(os.WriteFile(suite.yaml, []byte(sizesYAML), 0644))
}

func (suite *WhereTestSuite) write(name, content string) string {
	file := filepath.Join(filepath.Dir(suite.csv), name)
	suite.Require().NoError(os.WriteFile(file, []byte(content), 0644))
	return file
}

func (suite *WhereTestSuite) TearDownTest() {
	log.SetLevel(suite.level)
}

// selectedSizes returns the first cell of every printed row, skipping the
// header.
func (suite *WhereTestSuite) selectedSizes() []string {
	lines := strings.Split(strings.TrimRight(suite.stdout.String(), "\n"), "\n")
	suite.Require().NotEmpty(lines)
	suite.Regexp(`^Sizes\s+Waists`, lines[0])
	sizes := []string{}
	for _, line := range lines[1:] {
		sizes = append(sizes, strings.Fields(line)[0])
	}
	return sizes
}

func (suite *WhereTestSuite) assertSelects(expected []string, args ...string) {
	if suite.Equal(0, suite.run(append([]string{"where"}, args...)...), suite.stderr.String()) {
		suite.Equal(expected, suite.selectedSizes(), "%v", args)
	}
}

func (suite *WhereTestSuite) TestNumberComparisons() {
	suite.assertSelects([]string{"XL"}, suite.csv, "Waists", "above", "38")
	suite.assertSelects([]string{"L", "XL"}, suite.csv, "Waists", "not_below", "38")
	suite.assertSelects([]string{"S", "M"}, suite.csv, "Waists", "between", "30", "38")
	suite.assertSelects([]string{"S", "M", "L"}, suite.csv, "Waists", "between_or_equal_to", "30", "38")
	suite.assertSelects([]string{"M"}, suite.yaml, "Waists", "strictly_between", "30", "38")
}

func (suite *WhereTestSuite) TestTextPredicates() {
	suite.assertSelects([]string{"L", "XL"}, suite.csv, "Sizes", "containing", "L")
	suite.assertSelects([]string{"M", "L", "XL"}, suite.csv, "Sizes", "contained_in", "MXL")
	suite.assertSelects([]string{"L", "XL"}, suite.yaml, "Sizes", "matching", "*L")
	suite.assertSelects([]string{"M"}, suite.yaml, "Sizes", "equal_to", "M")
	suite.assertSelects([]string{"S", "XL"}, suite.csv, "Sizes", "above", "M")
}

func (suite *WhereTestSuite) TestNegate() {
	suite.assertSelects([]string{"S", "M", "L"}, suite.csv, "Waists", "above", "38", "--negate")
	suite.assertSelects([]string{"S"}, suite.csv, "Sizes", "contained_in", "MXL", "--negate")
}

func (suite *WhereTestSuite) TestNoMatchesPrintsTheHeader() {
	suite.assertSelects([]string{}, suite.csv, "Waists", "above", "100")
}

func (suite *WhereTestSuite) TestYAMLOutputCanBeReadBack() {
	suite.Require().Equal(0, suite.run("where", suite.csv, "Waists", "above", "34", "-o", "yaml"))
	t, err := table.ReadYAML(suite.stdout.Bytes())
	if suite.NoError(err) {
		suite.Equal([]string{"Sizes", "Waists"}, t.Labels())
		suite.Equal([][]interface{}{{"L", float64(38)}, {"XL", float64(42)}}, t.Rows())
	}
}

func (suite *WhereTestSuite) TestJSONOutput() {
	suite.Require().Equal(0, suite.run("where", suite.csv, "Sizes", "equal_to", "S", "--output", "json"))
	suite.JSONEq(`[
		{"label": "Sizes", "values": ["S"]},
		{"label": "Waists", "values": [30]}
	]`, suite.stdout.String())
}

func (suite *WhereTestSuite) TestUnknownOutputFormat() {
	suite.Equal(1, suite.run("where", suite.csv, "Sizes", "equal_to", "S", "-o", "xml"))
	suite.Regexp("xml format cannot be marshalled", suite.stderr.String())
}

func (suite *WhereTestSuite) TestExact() {
	suite.assertSelects([]string{"L"}, suite.csv, "Waists", "equal_to", "38.0", "--exact")

	// The operands are parsed as decimals
	suite.Equal(1, suite.run("where", suite.csv, "Waists", "above", "abc", "--exact"))
	suite.Regexp(`"abc" is not a decimal`, suite.stderr.String())
	suite.Equal(1, suite.run("where", suite.csv, "Waists", "above", "abc"))
	suite.Regexp(`"abc" is not a number`, suite.stderr.String())
}

func (suite *WhereTestSuite) TestExactSkipsNonFiniteNumbers() {
	file := suite.write("nonfinite.csv", "Sizes,Waists\nS,30\nM,NaN\nL,Inf\nXL,-Inf\n")
	suite.assertSelects([]string{"S"}, file, "Waists", "above", "20", "--exact")
	suite.assertSelects([]string{}, file, "Waists", "above", "20", "--exact", "--negate")
}

func (suite *WhereTestSuite) TestDates() {
	file := suite.write("orders.csv", "Sizes,Waists,Placed\nS,30,2019-01-02\nM,34,2019-03-04\nL,38,2019-05-06\n")
	suite.assertSelects([]string{"M", "L"}, file, "Placed", "above", "2019-02-01")
	suite.assertSelects([]string{"S", "M"}, file, "Placed", "between", "2019-01-02", "2019-05-06")
	suite.assertSelects([]string{"S", "M", "L"}, file, "Placed", "between_or_equal_to", "2019-01-02", "2019-05-06")
	suite.Regexp(`(?m)^S\s+30\s+2019-01-02$`, suite.stdout.String())

	suite.Equal(1, suite.run("where", file, "Placed", "above", "soon"))
	suite.Regexp(`"soon" is not a date`, suite.stderr.String())
	suite.Equal(1, suite.run("where", file, "Placed", "containing", "2019"))
	suite.Regexp(`containing only applies to text columns`, suite.stderr.String())
}

func (suite *WhereTestSuite) TestEmptyTablePrintsTheHeader() {
	file := suite.write("empty.csv", "Sizes,Waists\n")
	suite.assertSelects([]string{}, file, "Waists", "above", "38")
	suite.assertSelects([]string{}, file, "Sizes", "containing", "L")
}

func (suite *WhereTestSuite) TestExactFromTheEnvironment() {
	suite.Require().NoError(os.Setenv("ARE_EXACT", "true"))
	defer os.Unsetenv("ARE_EXACT")

	suite.Equal(1, suite.run("where", suite.csv, "Waists", "above", "abc"))
	suite.Regexp(`is not a decimal`, suite.stderr.String())
}

func (suite *WhereTestSuite) TestTrace() {
	hook := test.NewGlobal()
	defer hook.Reset()

	suite.assertSelects([]string{"S", "M", "L"}, suite.csv, "Waists", "above", "38", "--negate", "--trace")
	var traced []log.Fields
	for _, entry := range hook.AllEntries() {
		if _, ok := entry.Data["predicate"]; ok {
			traced = append(traced, entry.Data)
		}
	}
	if suite.Len(traced, 4) {
		suite.Equal("not above", traced[0]["predicate"])
		suite.Equal(float64(30), traced[0]["value"])
		suite.Equal(true, traced[0]["result"])
		suite.Equal(false, traced[3]["result"])
	}
}

func (suite *WhereTestSuite) TestErrors() {
	tcs := []struct {
		args     []string
		expected string
	}{
		{[]string{suite.csv, "Waists", "wider_than", "38"}, `unknown predicate "wider_than"`},
		{[]string{suite.csv, "Waists", "between", "30"}, `between takes 2 operand\(s\), got 1`},
		{[]string{suite.csv, "Waists", "above", "30", "34"}, `above takes 1 operand\(s\), got 2`},
		{[]string{suite.csv, "Inseams", "above", "30"}, `no column.*Inseams`},
		{[]string{suite.csv, "Waists", "containing", "3"}, `containing only applies to text columns`},
		{[]string{suite.csv, "Sizes", "matching", "["}, `invalid matching pattern "\["`},
		{[]string{filepath.Join(filepath.Dir(suite.csv), "sizes.json"), "Sizes", "above", "M"}, `unsupported table format ".json"`},
		{[]string{filepath.Join(filepath.Dir(suite.csv), "missing.csv"), "Sizes", "above", "M"}, `missing.csv`},
	}
	for _, tc := range tcs {
		suite.Equal(1, suite.run(append([]string{"where"}, tc.args...)...), "%v", tc.args)
		suite.Regexp(tc.expected, suite.stderr.String(), "%v", tc.args)
		suite.Empty(suite.stdout.String(), "%v", tc.args)
	}
}

func (suite *WhereTestSuite) TestTooFewArguments() {
	suite.Equal(1, suite.run("where", suite.csv, "Waists"))
	suite.Regexp("Error:.*requires at least 3 arg", suite.stderr.String())
}

func TestWhere(t *testing.T) {
	suite.Run(t, new(WhereTestSuite))
}
