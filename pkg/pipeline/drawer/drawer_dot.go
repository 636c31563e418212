package drawer

import (
	"os"
	"sort"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-lineedit/pkg/pipeline/measure"
)

// DOTDrawer writes the pipeline graph to a Graphviz DOT file.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer writing to dotFileName.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
	}
}

// AddStep adds a step to the pipeline graph.
func (d *DOTDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name, graph.VertexAttribute("shape", "box"))
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between parent and child steps.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// Draw creates the DOT file.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = draw.DOT(d.graph, file, draw.GraphAttribute("rankdir", "LR"))
	if err != nil {
		return errors.Wrapf(err, "unable to write dot file %s", d.dotFileName)
	}

	return errors.Wrapf(file.Close(), "unable to close dot file %s", d.dotFileName)
}

const maxRGB = 240

// AddMeasure labels every step with its average and total durations and colours every link from blue, the fastest
// transport, to red, the slowest.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	transports := make(map[string]map[string]time.Duration, len(metrics))
	sorted := []time.Duration{}

	for name, mt := range metrics {
		transports[name] = mt.AVGTransportDuration()
		for _, elapsed := range transports[name] {
			sorted = append(sorted, elapsed)
		}
	}

	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for name, mt := range metrics {
		err := d.labelStep(name, mt)
		if err != nil {
			return err
		}

		for inputStep, elapsed := range transports[name] {
			colour, err := transportColour(elapsed, sorted)
			if err != nil {
				return err
			}

			err = d.graph.UpdateEdge(inputStep, name,
				graph.EdgeAttribute("label", elapsed.String()),
				graph.EdgeAttribute("fontcolor", "blue"),
				graph.EdgeAttribute("color", colour),
			)
			if err != nil && !errors.Is(err, graph.ErrEdgeNotFound) {
				return errors.Wrapf(err, "unable to update edge from %s to %s", inputStep, name)
			}
		}
	}

	return nil
}

func (d *DOTDrawer) labelStep(name string, mt measure.Metric) error {
	_, properties, err := d.graph.VertexWithProperties(name)
	if errors.Is(err, graph.ErrVertexNotFound) {
		return nil
	}

	if err != nil {
		return errors.Wrapf(err, "unable to get vertex %s properties", name)
	}

	label := ""
	if avg := mt.AVGDuration(); avg != 0 {
		label = "avg: " + avg.String()
	}

	if total := mt.GetTotalDuration(); total > 0 {
		if label != "" {
			label += ", "
		}

		label += "end: " + total.String()
	}

	if label != "" {
		properties.Attributes["xlabel"] = label
	}

	return nil
}

// transportColour returns the hex colour of elapsed within the sorted durations.
func transportColour(elapsed time.Duration, sorted []time.Duration) (string, error) {
	fraction := 1.0
	if minValue, maxValue := sorted[0], sorted[len(sorted)-1]; maxValue > minValue {
		fraction = float64(elapsed-minValue) / float64(maxValue-minValue)
	}

	red := maxRGB * fraction

	colour, err := colors.RGB(uint8(red), 0, uint8(maxRGB-red))
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

var _ Drawer = (*DOTDrawer)(nil)
