// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mmcsr/mmio"
)

const (
	spdMTX        = "%%MatrixMarket matrix coordinate real symmetric\n2 2 2\n1 1 2\n2 2 2\n"
	indefiniteMTX = "%%MatrixMarket matrix coordinate real symmetric\n2 2 3\n1 1 1\n2 1 2\n2 2 1\n"
	brokenMTX     = "%%MatrixMarket matrix coordinate real general\n2 2 2\n1 1 1\n"
)

type cliSuite struct {
	suite.Suite
	dir string
}

func TestCLI(t *testing.T) {
	suite.Run(t, new(cliSuite))
}

func (s *cliSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

// file writes body under the test directory and returns its path.
func (s *cliSuite) file(name, body string) string {
	p := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(p, []byte(body), 0o600))

	return p
}

// run executes mmtool with args and stdin, isolated from any settings file.
func (s *cliSuite) run(stdin string, args ...string) (string, string, error) {
	return s.runWith([]string{"--config", s.file("empty.toml", ""), "--color", "off"}, stdin, args...)
}

func (s *cliSuite) runWith(base []string, stdin string, args ...string) (string, string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func (s *cliSuite) TestConvert_Args() {
	in := s.file("a.mtx", spdMTX)
	out := filepath.Join(s.dir, "a.csr")

	stdout, _, err := s.run("", "convert", in, out)
	s.Require().NoError(err)
	s.Empty(stdout)

	got, err := os.ReadFile(out)
	s.Require().NoError(err)
	s.True(strings.HasPrefix(string(got), "# "+in+"\n# (2, 2, 2, 'coordinate', 'real', 'symmetric')\n3 2 2\n"))
}

func (s *cliSuite) TestConvert_Prompts() {
	in := s.file("a.mtx", spdMTX)
	out := filepath.Join(s.dir, "prompted.csr")

	stdout, _, err := s.run(in+"\n"+out+"\n", "convert")
	s.Require().NoError(err)
	s.Equal(promptInput+promptOutput, stdout)
	s.FileExists(out)
}

func (s *cliSuite) TestConvert_PromptForOutputOnly() {
	in := s.file("a.mtx", spdMTX)
	out := filepath.Join(s.dir, "second.csr")

	stdout, _, err := s.run(out+"\n", "convert", in)
	s.Require().NoError(err)
	s.Equal(promptOutput, stdout)
	s.FileExists(out)
}

func (s *cliSuite) TestConvert_ParseErrorFails() {
	in := s.file("bad.mtx", brokenMTX)
	out := filepath.Join(s.dir, "bad.csr")

	_, stderr, err := s.run("", "convert", in, out)
	var pe *mmio.ParseError
	s.Require().ErrorAs(err, &pe)
	s.Contains(stderr, "Error:")
	s.NoFileExists(out)
}

func (s *cliSuite) TestConvert_EmptyAnswer() {
	_, _, err := s.run("\n", "convert")
	s.ErrorIs(err, errNoInput)
}

func (s *cliSuite) TestCheckPD_Verdicts() {
	cases := map[string]string{
		spdMTX:        verdictPD,
		indefiniteMTX: verdictNotPD,
	}
	for body, want := range cases {
		in := s.file("m.mtx", body)
		for _, backend := range []string{"native", "gonum"} {
			stdout, _, err := s.run("", "--factorizer", backend, "checkpd", in)
			s.Require().NoError(err)
			s.Equal(want+"\n", stdout, backend)
		}
	}
}

func (s *cliSuite) TestCheckPD_Prompt() {
	in := s.file("m.mtx", spdMTX)

	stdout, _, err := s.run(in+"\n", "checkpd")
	s.Require().NoError(err)
	s.Equal(promptCheckInput+verdictPD+"\n", stdout)
}

func (s *cliSuite) TestCheckPD_MalformedIsError() {
	in := s.file("bad.mtx", brokenMTX)

	stdout, _, err := s.run("", "checkpd", "--no-wait", in)
	s.Require().Error(err)
	s.NotContains(stdout, "Definite")
}

func (s *cliSuite) TestCheckPD_UnknownFactorizer() {
	in := s.file("m.mtx", spdMTX)
	_, _, err := s.run("", "--factorizer", "lapack", "checkpd", in)
	s.Error(err)
}

func (s *cliSuite) TestInfo() {
	a := s.file("a.mtx", spdMTX)
	b := s.file("b.mtx", indefiniteMTX)

	stdout, _, err := s.run("", "info", a)
	s.Require().NoError(err)
	s.Equal("(2, 2, 2, 'coordinate', 'real', 'symmetric')\n", stdout)

	stdout, _, err = s.run("", "info", a, b)
	s.Require().NoError(err)
	s.Equal(a+": (2, 2, 2, 'coordinate', 'real', 'symmetric')\n"+
		b+": (2, 2, 3, 'coordinate', 'real', 'symmetric')\n", stdout)

	_, _, err = s.run("", "info")
	s.Error(err)
}

func (s *cliSuite) TestVersion() {
	stdout, _, err := s.run("", "version", "--full")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(stdout, "mmtool "))
	s.Contains(stdout, "commit: unknown")
}

func (s *cliSuite) TestSettingsFile() {
	cfg := s.file("mmtool.toml", "[spd]\nfactorizer = \"gonum\"\n[log]\nlevel = \"debug\"\n")
	in := s.file("m.mtx", spdMTX)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--config", cfg, "--color", "off", "checkpd", in})
	s.Require().NoError(cmd.Execute())
	s.Equal(verdictPD+"\n", out.String())
	s.Contains(errOut.String(), "factorizer=gonum")

	bad := s.file("bad.toml", "[spd]\nfactorizer = \"nope\"\n")
	_, _, err := s.run("", "--config", bad, "version")
	s.Error(err)
}

func (s *cliSuite) TestBadColorMode() {
	_, _, err := s.run("", "--color", "rainbow", "version")
	s.Error(err)
}

func (s *cliSuite) TestMissingConfigFails() {
	in := s.file("a.mtx", spdMTX)
	missing := filepath.Join(s.dir, "missing.toml")
	stdout, _, err := s.runWith([]string{"--config", missing, "--color", "off"}, "", "checkpd", in)
	s.Require().ErrorIs(err, fs.ErrNotExist)
	s.Empty(stdout)
}
