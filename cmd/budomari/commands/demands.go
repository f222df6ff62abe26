package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/piwi3910/budomari/internal/importer"
	"github.com/piwi3910/budomari/internal/model"
	"github.com/piwi3910/budomari/internal/project"
)

// demandSource names where a command takes its cut list from: an import
// file argument, a saved project, or a stored template.
type demandSource struct {
	projectPath  string
	templateName string
	templatePath string
}

// load returns the demands and, for projects and templates, the saved
// configuration that should replace the command-line one.
func (s demandSource) load(args []string) ([]model.PieceDemand, *model.Config, error) {
	switch {
	case s.projectPath != "":
		p, err := project.LoadProject(s.projectPath)
		if err != nil {
			return nil, nil, err
		}
		return p.Demands, &p.Config, nil

	case s.templateName != "":
		store, err := project.LoadTemplates(s.templatePath)
		if err != nil {
			return nil, nil, err
		}
		t := store.FindByName(s.templateName)
		if t == nil {
			return nil, nil, fmt.Errorf("no template named %q", s.templateName)
		}
		return t.Demands, &t.Config, nil

	case len(args) == 1:
		return importDemands(args[0])
	}
	return nil, nil, errors.New("give a cut list file, --project or --template")
}

func importDemands(path string) ([]model.PieceDemand, *model.Config, error) {
	res := importer.Import(path)
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, warnStyle.Render("warning: "+w))
	}
	if len(res.Errors) > 0 {
		return nil, nil, errors.Join(joinMessages(res.Errors)...)
	}
	if len(res.Demands) == 0 {
		return nil, nil, fmt.Errorf("no pieces found in %s", path)
	}
	logger.Debug("Imported cut list", "path", path, "demands", len(res.Demands))
	return res.Demands, nil, nil
}

func joinMessages(msgs []string) []error {
	errs := make([]error, len(msgs))
	for i, m := range msgs {
		errs[i] = errors.New(m)
	}
	return errs
}
