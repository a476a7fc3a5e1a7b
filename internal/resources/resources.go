// Package resources holds the curated wellness reading list.
package resources

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var resourcesYAML []byte

// Link is one external article.
type Link struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// Topic groups related links.
type Topic struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Links       []Link `yaml:"links" json:"links"`
}

// Quote is a short inspirational line.
type Quote struct {
	Text   string `yaml:"text" json:"text"`
	Author string `yaml:"author" json:"author"`
}

// Library is the full reading list.
type Library struct {
	Topics []Topic `yaml:"topics" json:"topics"`
	Quotes []Quote `yaml:"quotes" json:"quotes"`
}

var def *Library

func init() {
	lib, err := Parse(resourcesYAML)
	if err != nil {
		panic(fmt.Sprintf("resources: embedded list is invalid: %v", err))
	}
	def = lib
}

// Topics returns a copy of the embedded topics.
func Topics() []Topic {
	out := slices.Clone(def.Topics)
	for i := range out {
		out[i].Links = slices.Clone(out[i].Links)
	}
	return out
}

// Quotes returns a copy of the embedded quotes.
func Quotes() []Quote {
	return slices.Clone(def.Quotes)
}

// Parse decodes and validates a library from YAML.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse resources: %w", err)
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

func (l *Library) validate() error {
	if len(l.Topics) == 0 {
		return errors.New("resources: no topics")
	}
	for i, t := range l.Topics {
		if t.Title == "" {
			return fmt.Errorf("resources: topic %d has no title", i)
		}
		if len(t.Links) == 0 {
			return fmt.Errorf("resources: topic %q has no links", t.Title)
		}
		for _, link := range t.Links {
			u, err := url.Parse(link.URL)
			if err != nil || u.Scheme != "https" || u.Host == "" {
				return fmt.Errorf("resources: topic %q: bad link %q", t.Title, link.URL)
			}
		}
	}
	return nil
}
