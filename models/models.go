package models

// Course is one entry of the fixed catalog.
type Course struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url,omitempty"`
}

// CourseProgress is a catalog entry with the user's completion percent.
type CourseProgress struct {
	Course
	Percent int `json:"percent"`
}
