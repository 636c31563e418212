package drawer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-lineedit/pkg/pipeline/drawer"
	"github.com/askiada/go-lineedit/pkg/pipeline/measure"
	"github.com/askiada/go-lineedit/pkg/pipeline/model"
)

func TestDOTDrawer(t *testing.T) {
	t.Parallel()

	dotFile := filepath.Join(t.TempDir(), "graph.dot")
	d := drawer.NewDOTDrawer(dotFile)

	require.NoError(t, d.AddStep("read"))
	require.NoError(t, d.AddStep("write"))
	require.NoError(t, d.AddLink("read", "write"))
	require.Error(t, d.AddStep("read"))
	require.Error(t, d.AddLink("read", "missing"))

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("write", 1).AddTransportDuration("read", time.Millisecond)
	msr.AddMetric("not drawn", 1).AddTransportDuration("read", time.Second)
	require.NoError(t, d.AddMeasure(msr))
	require.NoError(t, d.Draw())

	content, err := os.ReadFile(dotFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "digraph")
	assert.Contains(t, string(content), `"read" -> "write"`)
	assert.Contains(t, string(content), "1ms")
	assert.Contains(t, string(content), "rankdir")
}

func TestDOTDrawerBadPath(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer(filepath.Join(t.TempDir(), "missing", "graph.dot"))
	require.Error(t, d.Draw())
}

func TestPipelineDrawer(t *testing.T) {
	t.Parallel()

	dotFile := filepath.Join(t.TempDir(), "graph.dot")
	opt := drawer.PipelineDrawer(drawer.NewDOTDrawer(dotFile), nil)
	require.NoError(t, opt.New())

	read := &model.StepInfo{Name: "read"}
	write := &model.StepInfo{Name: "write"}
	require.NoError(t, opt.PrepareStep(model.StartStep, read))
	require.NoError(t, opt.PrepareSink(read, write))
	require.NoError(t, opt.Finish())

	content, err := os.ReadFile(dotFile)
	require.NoError(t, err)

	for _, edge := range []string{`"start" -> "read"`, `"read" -> "write"`, `"write" -> "end"`} {
		assert.Contains(t, string(content), edge)
	}
}
