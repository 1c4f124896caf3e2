package content

import (
	"encoding/json"
	"fmt"
	"os"

	"learning-portal-api/models"
	"learning-portal-api/utils"
)

// Catalog is the fixed course list shown on the portal.
type Catalog []models.Course

// DefaultCatalog is the built-in course list, names kept verbatim (spelling
// included) so existing progress documents keep matching.
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "Python Basics", Description: "Learn Python from scratch", VideoURL: "https://www.youtube.com/watch?v=rfscVS0vtbw"},
		{Name: "Data Science", Description: "Explore data analysis techniques", VideoURL: "https://www.youtube.com/watch?v=ua-CiDNNj30"},
		{Name: "Machine Learning", Description: "Understand ML algorithms", VideoURL: "https://www.youtube.com/watch?v=GwIo3gDZCVQ"},
		{Name: "AI for Beginners", Description: "Introduction to AI", VideoURL: "https://www.youtube.com/watch?v=Yq0QkCxoTHM"},
		{Name: "Deep Learning", Description: "Dive into deep neural networks", VideoURL: "https://www.youtube.com/playlist?list=PLZHQObOWTQDNU6R1_67000Dx_ZCJB-3pi"},
		{Name: "Computer Vision", Description: "Master image processing", VideoURL: "https://www.youtube.com/watch?v=lgbKpn7q40M"},
		{Name: "Natural Language Processing", Description: "Work with text data", VideoURL: "https://www.youtube.com/watch?v=dIUTsFT2MeQ"},
		{Name: "Reinforcement Learning", Description: "Learn agent-based learning", VideoURL: "https://www.youtube.com/watch?v=2pWv7GOvuf0"},
		{Name: "AI Ethics", Description: "Understand ethical implications", VideoURL: "https://www.youtube.com/watch?v=UwsrzCVZAb8"},
		{Name: "Genarative AI", Description: "Understanding the Gen AI", VideoURL: "https://www.youtube.com/watch?v=hHnvo4f35GA"},
	}
}

// LoadCatalog reads a catalog override from a JSON file. An empty path keeps
// the default catalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no courses", path)
	}

	utils.LogStartup("Loaded %d courses from %s", len(catalog), path)
	return catalog, nil
}

// Lookup finds a course by its exact name.
func (c Catalog) Lookup(name string) (models.Course, bool) {
	for _, course := range c {
		if course.Name == name {
			return course, true
		}
	}
	return models.Course{}, false
}
