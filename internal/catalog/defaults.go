package catalog

import "sort"

// defaultTemplates returns the built-in environment templates.
func defaultTemplates() []Template {
	return []Template{
		{
			ID:                "python-dev",
			Name:              "Python Development Environment",
			Description:       "Environment for Python development with common tools and libraries",
			BaseImage:         "python:3.9",
			InstalledPackages: []string{"pytest", "black", "isort", "mypy", "flake8"},
			SetupCommands:     []string{"pip install -r requirements.txt"},
		},
		{
			ID:                "node-dev",
			Name:              "Node.js Development Environment",
			Description:       "Environment for Node.js development with common tools and libraries",
			BaseImage:         "node:16",
			InstalledPackages: []string{"typescript", "eslint", "prettier", "jest"},
			SetupCommands:     []string{"npm install"},
		},
		{
			ID:                "go-dev",
			Name:              "Go Development Environment",
			Description:       "Environment for Go development with common tools and libraries",
			BaseImage:         "golang:1.18",
			InstalledPackages: []string{},
			SetupCommands:     []string{"go mod download"},
		},
	}
}

// defaultResourceConfigs returns the built-in size presets.
func defaultResourceConfigs() map[string]ResourceConfig {
	return map[string]ResourceConfig{
		"small":  {CPU: "1", Memory: "2Gi", Disk: "10Gi"},
		"medium": {CPU: "2", Memory: "4Gi", Disk: "20Gi"},
		"large":  {CPU: "4", Memory: "8Gi", Disk: "40Gi"},
	}
}

// standardSizeOrder ranks the conventional labels so tables read
// smallest to largest.
var standardSizeOrder = map[string]int{"small": 0, "medium": 1, "large": 2}

func sortedSizes(resources map[string]ResourceConfig) []string {
	sizes := make([]string, 0, len(resources))
	for size := range resources {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool {
		ri, iok := standardSizeOrder[sizes[i]]
		rj, jok := standardSizeOrder[sizes[j]]
		if iok && jok {
			return ri < rj
		}
		if iok != jok {
			return iok
		}
		return sizes[i] < sizes[j]
	})
	return sizes
}
