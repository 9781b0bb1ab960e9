// Package organize groups paired starter/solution files from a flat
// directory into one folder per task.
package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	DefaultExt            = ".rkt"
	DefaultStarterSuffix  = "-starter"
	DefaultSolutionSuffix = "-solution"
	SolutionFolder        = "solution"
)

type Organizer struct {
	Ext            string
	StarterSuffix  string
	SolutionSuffix string
}

// completed move of one starter/solution pair
type Task struct {
	Name         string
	StarterDest  string
	SolutionDest string
}

// task whose counterpart file was not found
type Incomplete struct {
	Name         string
	ExistingFile string
	MissingRole  string
}

// task whose files could not be moved
type Failure struct {
	Name string
	Err  error
}

type Result struct {
	FilesScanned int
	Tasks        []Task
	Incomplete   []Incomplete
	Failures     []Failure
}

// total pairs considered, complete or not
func (r *Result) Discovered() int {
	return len(r.Tasks) + len(r.Incomplete) + len(r.Failures)
}

func New() *Organizer {
	return &Organizer{
		Ext:            DefaultExt,
		StarterSuffix:  DefaultStarterSuffix,
		SolutionSuffix: DefaultSolutionSuffix,
	}
}

// Run scans the top level of dir for files with the configured extension,
// groups them by task name, and moves each complete pair into its own
// folder: the starter at the folder root and the solution in a solution/
// subfolder. Pairs missing one side are reported, not moved.
func (o *Organizer) Run(dir string) (*Result, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	type pair struct {
		starter  string
		solution string
	}
	groups := make(map[string]*pair)

	result := &Result{}
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !strings.EqualFold(filepath.Ext(name), o.Ext) {
			continue
		}
		result.FilesScanned++

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		switch {
		case strings.HasSuffix(stem, o.StarterSuffix):
			task := strings.TrimSuffix(stem, o.StarterSuffix)
			if groups[task] == nil {
				groups[task] = &pair{}
			}
			groups[task].starter = name
		case strings.HasSuffix(stem, o.SolutionSuffix):
			task := strings.TrimSuffix(stem, o.SolutionSuffix)
			if groups[task] == nil {
				groups[task] = &pair{}
			}
			groups[task].solution = name
		}
	}

	names := make([]string, 0, len(groups))
	for task := range groups {
		names = append(names, task)
	}
	sort.Strings(names)

	for _, task := range names {
		files := groups[task]
		if files.starter == "" || files.solution == "" {
			missing := "starter"
			existing := files.solution
			if files.starter != "" {
				missing = "solution"
				existing = files.starter
			}
			result.Incomplete = append(result.Incomplete, Incomplete{
				Name:         task,
				ExistingFile: existing,
				MissingRole:  missing,
			})
			continue
		}

		done, err := o.moveTask(dir, task, files.starter, files.solution)
		if err != nil {
			result.Failures = append(result.Failures, Failure{Name: task, Err: err})
			continue
		}
		result.Tasks = append(result.Tasks, done)
	}

	return result, nil
}

func (o *Organizer) moveTask(dir, task, starter, solution string) (Task, error) {
	taskDir := filepath.Join(dir, task)
	if err := os.MkdirAll(taskDir, 0755); err != nil {
		return Task{}, err
	}

	starterDest := filepath.Join(taskDir, starter)
	if err := os.Rename(filepath.Join(dir, starter), starterDest); err != nil {
		return Task{}, err
	}

	solutionDir := filepath.Join(taskDir, SolutionFolder)
	if err := os.MkdirAll(solutionDir, 0755); err != nil {
		return Task{}, err
	}

	solutionDest := filepath.Join(solutionDir, solution)
	if err := os.Rename(filepath.Join(dir, solution), solutionDest); err != nil {
		return Task{}, err
	}

	return Task{
		Name:         task,
		StarterDest:  starterDest,
		SolutionDest: solutionDest,
	}, nil
}
