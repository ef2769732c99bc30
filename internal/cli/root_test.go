package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemsXML = `<items><item a="1"><v>10</v></item><item a="2"><v>20</v></item></items>`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func baseOptions(infile string, fieldSpecs ...string) transformOptions {
	return transformOptions{
		infile:      infile,
		fieldSpecs:  fieldSpecs,
		indexField:  "ID",
		format:      "csv",
		delimiter:   ",",
		inputFormat: "auto",
	}
}

func TestRunTransform_CSV(t *testing.T) {
	infile := writeTempFile(t, "items.xml", itemsXML)

	var buf bytes.Buffer
	err := runTransform(&buf, log.New(io.Discard), baseOptions(infile, "attrib:a", "text:v"))
	require.NoError(t, err)

	assert.Equal(t, "ID,a,v\n0,1,10\n1,2,20\n", buf.String())
}

func TestRunTransform_FormatDirectives(t *testing.T) {
	infile := writeTempFile(t, "pts.xml",
		`<pts><pt><x>1.23456</x><y>somewhere</y></pt></pts>`)

	var buf bytes.Buffer
	err := runTransform(&buf, log.New(io.Discard), baseOptions(infile, "text:x:.2f", "text:y:.4s"))
	require.NoError(t, err)

	assert.Equal(t, "ID,x,y\n0,1.23,some\n", buf.String())
}

func TestRunTransform_CustomDelimiter(t *testing.T) {
	infile := writeTempFile(t, "items.xml", itemsXML)

	opts := baseOptions(infile, "attrib:a")
	opts.delimiter = ";"

	var buf bytes.Buffer
	err := runTransform(&buf, log.New(io.Discard), opts)
	require.NoError(t, err)

	assert.Equal(t, "ID;a\n0;1\n1;2\n", buf.String())
}

func TestRunTransform_BadDelimiter(t *testing.T) {
	infile := writeTempFile(t, "items.xml", itemsXML)

	opts := baseOptions(infile, "attrib:a")
	opts.delimiter = "ab"

	err := runTransform(io.Discard, log.New(io.Discard), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delimiter")
}

func TestRunTransform_BadFieldSpecProducesNoOutput(t *testing.T) {
	infile := writeTempFile(t, "items.xml", itemsXML)

	var buf bytes.Buffer
	err := runTransform(&buf, log.New(io.Discard), baseOptions(infile, "bogus:a"))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRunTransform_MissingChildProducesNoOutput(t *testing.T) {
	infile := writeTempFile(t, "items.xml", itemsXML)

	var buf bytes.Buffer
	err := runTransform(&buf, log.New(io.Discard), baseOptions(infile, "text:missing"))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRunTransform_UnknownOutputFormat(t *testing.T) {
	infile := writeTempFile(t, "items.xml", itemsXML)

	opts := baseOptions(infile, "attrib:a")
	opts.format = "json"

	err := runTransform(io.Discard, log.New(io.Discard), opts)
	require.Error(t, err)
}

func TestRunTransform_MissingFile(t *testing.T) {
	opts := baseOptions(filepath.Join(t.TempDir(), "absent.xml"), "attrib:a")
	err := runTransform(io.Discard, log.New(io.Discard), opts)
	require.Error(t, err)
}

func TestRunTransform_ExplicitInputFormat(t *testing.T) {
	infile := writeTempFile(t, "data.bin", itemsXML)

	opts := baseOptions(infile, "attrib:a")
	opts.inputFormat = "xml"

	var buf bytes.Buffer
	err := runTransform(&buf, log.New(io.Discard), opts)
	require.NoError(t, err)
	assert.Equal(t, "ID,a\n0,1\n1,2\n", buf.String())
}

func TestRootCommand_EndToEnd(t *testing.T) {
	infile := writeTempFile(t, "items.xml", itemsXML)

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{infile, "attrib:a", "text:v"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "ID,a,v\n0,1,10\n1,2,20\n", out.String())
}

func TestRootCommand_ErrorExit(t *testing.T) {
	infile := writeTempFile(t, "items.xml", itemsXML)

	cmd := NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{infile, "bogus:a"})

	require.Error(t, cmd.Execute())
}

func TestRootCommand_RequiresFieldSpecs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"only-infile.xml"})

	require.Error(t, cmd.Execute())
}
