package catalog

// Document is the YAML representation of a catalog.
type Document struct {
	Authors   []AuthorDoc   `yaml:"authors"`
	Magazines []MagazineDoc `yaml:"magazines"`
	Articles  []ArticleDoc  `yaml:"articles"`
}

// AuthorDoc describes one author.
type AuthorDoc struct {
	Name string `yaml:"name"`
}

// MagazineDoc describes one magazine.
type MagazineDoc struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleDoc describes one article by author and magazine name.
type ArticleDoc struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}
