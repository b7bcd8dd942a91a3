package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"learnpath-backend/internal/models"
)

// ResourceAssembler builds the templated resource bundle for a topic. It
// never touches the network; the same topic always yields the same bundle.
type ResourceAssembler struct {
	lang language.Tag
}

func NewResourceAssembler() *ResourceAssembler {
	return &ResourceAssembler{lang: language.English}
}

// Assemble fills every category of the bundle. Category sources take a
// context so the signature survives a move to real lookups.
func (a *ResourceAssembler) Assemble(ctx context.Context, topic string) (*models.ResourceBundle, error) {
	bundle := &models.ResourceBundle{
		Topic:    topic,
		Concepts: conceptsFor(topic),
	}

	// Each goroutine owns exactly one bundle field
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		bundle.Videos, err = a.searchVideos(gctx, topic)
		return err
	})
	g.Go(func() (err error) {
		bundle.Blogs, err = a.searchBlogs(gctx, topic)
		return err
	})
	g.Go(func() (err error) {
		bundle.Courses, err = a.searchCourses(gctx, topic)
		return err
	})
	g.Go(func() (err error) {
		bundle.Community, err = a.searchCommunity(gctx, topic)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble resources for %q: %w", topic, err)
	}
	return bundle, nil
}

// display upper-cases the first letter of topic for headings and leaves the
// rest as typed. Casers are stateful, so each call gets its own.
func (a *ResourceAssembler) display(topic string) string {
	_, size := utf8.DecodeRuneInString(topic)
	return cases.Upper(a.lang).String(topic[:size]) + topic[size:]
}

func (a *ResourceAssembler) searchVideos(ctx context.Context, topic string) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := a.display(topic)
	return []models.Video{
		{
			Title:    name + " Tutorial for Beginners - Full Course",
			Channel:  "freeCodeCamp.org",
			Duration: "4:32:15",
			Views:    "2.1M views",
			URL:      "https://www.youtube.com/results?search_query=" + encodeQuery(topic+" tutorial"),
		},
		{
			Title:    "Learn " + name + " in 1 Hour",
			Channel:  "Programming with Mosh",
			Duration: "1:08:43",
			Views:    "856K views",
			URL:      "https://www.youtube.com/results?search_query=" + encodeQuery(topic+" crash course"),
		},
		{
			Title:    name + " Explained in 100 Seconds",
			Channel:  "Fireship",
			Duration: "2:34",
			Views:    "1.2M views",
			URL:      "https://www.youtube.com/results?search_query=" + encodeQuery(topic+" explained"),
		},
	}, nil
}

func (a *ResourceAssembler) searchBlogs(ctx context.Context, topic string) ([]models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := a.display(topic)
	return []models.Blog{
		{
			Title:    "Complete Guide to " + name,
			Author:   "Dev Community",
			Platform: "Dev.to",
			ReadTime: "12 min read",
			Excerpt:  "Comprehensive guide covering everything you need to know about " + topic,
			URL:      "https://dev.to/search?q=" + encodeQuery(topic),
		},
		{
			Title:    name + " Best Practices",
			Author:   "Medium Writers",
			Platform: "Medium",
			ReadTime: "8 min read",
			Excerpt:  "Industry best practices and tips for mastering " + topic,
			URL:      "https://medium.com/search?q=" + encodeQuery(topic),
		},
	}, nil
}

func (a *ResourceAssembler) searchCourses(ctx context.Context, topic string) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := a.display(topic)
	return []models.Course{
		{
			Title:       "Complete " + name + " Course",
			Platform:    "Udemy",
			Price:       "Free",
			Rating:      "4.6",
			Students:    "45k",
			Description: "Master " + topic + " from beginner to advanced level",
			URL:         "https://www.udemy.com/courses/search/?q=" + encodeQuery(topic) + "&price=price-free",
		},
		{
			Title:       name + " Specialization",
			Platform:    "Coursera",
			Price:       "Free to audit",
			Rating:      "4.8",
			Students:    "120k",
			Description: "University-level course on " + topic + " fundamentals",
			URL:         "https://www.coursera.org/search?query=" + encodeQuery(topic),
		},
	}, nil
}

func (a *ResourceAssembler) searchCommunity(ctx context.Context, topic string) ([]models.CommunityPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := a.display(topic)
	return []models.CommunityPost{
		{
			Title:    "Best resources to learn " + topic + "?",
			Platform: "Reddit",
			Content:  "Community discussion about the most effective ways to learn " + topic,
			Comments: "127",
			Score:    "456",
			URL:      "https://www.reddit.com/search/?q=" + encodeQuery(topic+" learning resources"),
		},
		{
			Title:    name + " learning roadmap",
			Platform: "Reddit",
			Content:  "Step-by-step guide shared by the community for mastering " + topic,
			Comments: "89",
			Score:    "234",
			URL:      "https://www.reddit.com/search/?q=" + encodeQuery(topic+" roadmap"),
		},
	}, nil
}

var conceptTable = map[string][]models.Concept{
	"git": {
		{Title: "Version Control", Description: "System for tracking changes in files over time"},
		{Title: "Repository", Description: "A directory containing your project files and Git history"},
		{Title: "Commit", Description: "A snapshot of your project at a specific point in time"},
		{Title: "Branch", Description: "A parallel version of your repository for feature development"},
	},
	"github": {
		{Title: "Remote Repository", Description: "A Git repository hosted on GitHub's servers"},
		{Title: "Pull Request", Description: "A request to merge changes from one branch to another"},
		{Title: "Fork", Description: "A copy of someone else's repository in your GitHub account"},
		{Title: "Clone", Description: "Creating a local copy of a remote repository"},
	},
	"python": {
		{Title: "Variables", Description: "Containers for storing data values"},
		{Title: "Functions", Description: "Reusable blocks of code that perform specific tasks"},
		{Title: "Data Types", Description: "Different kinds of data like strings, integers, and lists"},
		{Title: "Loops", Description: "Structures that repeat code execution"},
	},
}

// conceptsFor returns a fresh copy so callers can't mutate the table.
func conceptsFor(topic string) []models.Concept {
	if known, ok := conceptTable[strings.ToLower(topic)]; ok {
		return append([]models.Concept(nil), known...)
	}
	return []models.Concept{
		{Title: "Fundamentals", Description: "Basic concepts and principles of " + topic},
		{Title: "Best Practices", Description: "Industry standards and recommended approaches for " + topic},
		{Title: "Common Patterns", Description: "Frequently used patterns and techniques in " + topic},
		{Title: "Advanced Topics", Description: "Complex concepts and advanced features of " + topic},
	}
}

// queryUnescaper restores the characters browsers leave bare in a URI
// component, and writes spaces as %20.
var queryUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeQuery percent-encodes s for a query value the way encodeURIComponent
// does.
func encodeQuery(s string) string {
	return queryUnescaper.Replace(url.QueryEscape(s))
}
