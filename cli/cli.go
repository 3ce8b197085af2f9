package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/ini.v1"

	"xtvkit/ds"
	"xtvkit/ui"
	"xtvkit/xtv"
	"xtvkit/xtv/xcomp"
	"xtvkit/xtv/xheader"
)

type (
	Args struct {
		Info    *InfoCmd   `arg:"subcommand:info" help:"dump the catalog of a file as JSON"`
		Export  *ExportCmd `arg:"subcommand:export" help:"export channels to CSV as described by a job file"`
		Browse  *BrowseCmd `arg:"subcommand:browse" help:"walk the components of a file interactively"`
		Verbose bool       `arg:"-v" help:"log every header block while decoding"`
	}
	InfoCmd struct {
		File string `arg:"positional,required" help:"path to an XTV file" placeholder:"run.xtv"`
	}
	ExportCmd struct {
		Job string `arg:"positional,required" help:"path to an INI job file" placeholder:"job.ini"`
	}
	BrowseCmd struct {
		File string `arg:"positional,required" help:"path to an XTV file" placeholder:"run.xtv"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A command line utility to inspect and export the contents of XTV files,",
			"the binary plot output of thermal-hydraulic system simulations.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if args.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	err := error(nil)
	switch {
	case args.Info != nil:
		err = runInfo(args.Info.File)
	case args.Export != nil:
		err = runExport(args.Export.Job)
	case args.Browse != nil:
		err = runBrowse(args.Browse.File)
	default:
		parser.WriteHelp(os.Stdout)
	}
	if err != nil {
		logrus.Fatal(err)
	}
}

func runInfo(path string) error {
	file, err := xtv.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	catalog := struct {
		Header     *xheader.StartingBlock                         `json:"header"`
		TimeEdits  []float64                                      `json:"time_edits"`
		Components *ds.LinkedHashMap[xcomp.Key, *xcomp.Component] `json:"components"`
	}{
		Header:     file.Header,
		TimeEdits:  file.Times,
		Components: file.Components,
	}
	bs, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return errors.Wrap(err, "runInfo error serializing catalog")
	}
	bs = append(bs, '\n')
	_, err = os.Stdout.Write(bs)
	return err
}

// runExport reads an INI job file and writes the described channels to CSV.
// The job lives in one [export] section: the source `file`, a comma
// separated `channels` list, the destination `to`, and an optional `step`
// that resamples the time axis on a fixed interval.
func runExport(jobPath string) error {
	job, err := ini.Load(jobPath)
	if err != nil {
		return errors.Wrapf(err, `runExport error loading job file "%s"`, jobPath)
	}
	section := job.Section("export")
	source := section.Key("file").String()
	channels := section.Key("channels").Strings(",")
	destination := section.Key("to").String()
	step := section.Key("step").MustFloat64(0)
	if source == "" || destination == "" || len(channels) == 0 {
		return errors.Errorf(
			`runExport error: job file "%s" needs "file", "channels" and "to" in its [export] section`,
			jobPath,
		)
	}

	file, err := xtv.Open(source)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	out, err := os.Create(destination)
	if err != nil {
		return errors.Wrapf(err, `runExport error creating "%s"`, destination)
	}
	defer func() { _ = out.Close() }()

	writer := csv.NewWriter(out)
	if err := writer.Write(append([]string{"time"}, channels...)); err != nil {
		return errors.Wrap(err, "runExport error writing header row")
	}
	for _, time := range resample(file.Times, step) {
		row := make([]string, 0, len(channels)+1)
		row = append(row, formatFloat(time))
		for _, channel := range channels {
			value, err := file.Value(time, channel)
			if err != nil {
				return errors.Wrapf(err, `runExport error querying "%s" at time "%g"`, channel, time)
			}
			row = append(row, formatFloat(value))
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "runExport error writing row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "runExport error flushing output")
	}
	logrus.Infof("exported %d channels to %s", len(channels), destination)
	return nil
}

func runBrowse(path string) error {
	file, err := xtv.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	return ui.Start(file)
}

// resample rebuilds the time axis on a fixed step inside the recorded span;
// a step of zero keeps the recorded edits as they are.
func resample(times []float64, step float64) []float64 {
	if step <= 0 || len(times) == 0 {
		return times
	}
	first, last := times[0], times[len(times)-1]
	n := int((last-first)/step) + 1
	if n < 2 {
		return []float64{first}
	}
	return floats.Span(make([]float64, n), first, first+step*float64(n-1))
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
