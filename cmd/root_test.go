package cmd

import (
	"bytes"

	"github.com/puppetlabs/are/cmd/internal/config"
	cmdutil "github.com/puppetlabs/are/cmd/util"
	"github.com/stretchr/testify/suite"
)

// commandSuite runs are's commands with captured output.
type commandSuite struct {
	suite.Suite
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func (suite *commandSuite) SetupSuite() {
	suite.Require().NoError(config.Init())
}

func (suite *commandSuite) SetupTest() {
	suite.stdout.Reset()
	suite.stderr.Reset()
	cmdutil.Stdout = &suite.stdout
	cmdutil.ColoredStderr = &suite.stderr
}

func (suite *commandSuite) run(args ...string) int {
	suite.stdout.Reset()
	suite.stderr.Reset()
	rootCmd := rootCommand()
	rootCmd.SetArgs(args)
	return toExitCode(rootCmd.Execute())
}
