// File: attrfile.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// YAML attribute files. Durations use Go syntax ("1ms", "100us"); policy
// and overrun names are lower-case. Omitted fields take the DefaultAttr
// values, so a file with only "period" is valid.

package corelock

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type attrSpec struct {
	Period     string `yaml:"period"`
	Priority   *int   `yaml:"priority"`
	Policy     string `yaml:"policy"`
	CPUs       []int  `yaml:"cpus"`
	Overrun    string `yaml:"overrun"`
	MaxRunTime string `yaml:"max_run_time"`
	StartAlign string `yaml:"start_align"`
}

// LoadAttr reads an Attr from a YAML file.
func LoadAttr(path string) (Attr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attr{}, fmt.Errorf("attr file: %w", err)
	}
	return ParseAttr(data)
}

// ParseAttr decodes an Attr from YAML bytes.
func ParseAttr(data []byte) (Attr, error) {
	var spec attrSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Attr{}, fmt.Errorf("attr file: %w", err)
	}

	period, err := parseSpecDuration("period", spec.Period)
	if err != nil {
		return Attr{}, err
	}
	attr := DefaultAttr(period, spec.CPUs...)

	if spec.Priority != nil {
		attr.Priority = *spec.Priority
	}
	switch spec.Policy {
	case "", "fifo":
		attr.Policy = SchedFIFO
	case "rr":
		attr.Policy = SchedRR
	case "other":
		attr.Policy = SchedOther
		if spec.Priority == nil {
			attr.Priority = 0
		}
	default:
		return Attr{}, fmt.Errorf("attr file: unknown policy %q", spec.Policy)
	}
	switch spec.Overrun {
	case "", "stop":
		attr.Overrun = OverrunStop
	case "notify":
		attr.Overrun = OverrunNotify
	case "ignore":
		attr.Overrun = OverrunIgnore
	default:
		return Attr{}, fmt.Errorf("attr file: unknown overrun behavior %q", spec.Overrun)
	}
	if spec.MaxRunTime != "" {
		if attr.MaxRunTime, err = parseSpecDuration("max_run_time", spec.MaxRunTime); err != nil {
			return Attr{}, err
		}
	}
	if spec.StartAlign != "" {
		if attr.StartAlign, err = parseSpecDuration("start_align", spec.StartAlign); err != nil {
			return Attr{}, err
		}
	}
	return attr, nil
}

func parseSpecDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("attr file: missing %s", field)
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("attr file: %s: %w", field, err)
	}
	return d, nil
}
