package models

// ResourceRequest is the payload sent to the resources endpoint.
type ResourceRequest struct {
	Query string `json:"query"`
}

type Concept struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Video struct {
	Title    string `json:"title"`
	Channel  string `json:"channel"`
	Duration string `json:"duration"`
	Views    string `json:"views"`
	URL      string `json:"url"`
}

type Blog struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Platform string `json:"platform"`
	ReadTime string `json:"readTime"`
	Excerpt  string `json:"excerpt"`
	URL      string `json:"url"`
}

type Course struct {
	Title       string `json:"title"`
	Platform    string `json:"platform"`
	Price       string `json:"price"`
	Rating      string `json:"rating"`
	Students    string `json:"students"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type CommunityPost struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Content  string `json:"content"`
	Comments string `json:"comments"`
	Score    string `json:"score"`
	URL      string `json:"url"`
}

// ResourceBundle is everything the learning panel shows for one topic.
type ResourceBundle struct {
	Topic     string          `json:"topic"`
	Concepts  []Concept       `json:"concepts"`
	Videos    []Video         `json:"videos"`
	Blogs     []Blog          `json:"blogs"`
	Courses   []Course        `json:"courses"`
	Community []CommunityPost `json:"community"`
}
