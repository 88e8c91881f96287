package catalog

import "encoding/json"

// Rank orders catalog entries on listing pages. Lower order sorts first.
type Rank string

const (
	RankHigh Rank = "high"
	RankMid  Rank = "mid"
	// RankMedium is a legacy alias for RankMid still present in older data files.
	RankMedium Rank = "medium"
	RankLow    Rank = "low"
)

// Order maps a rank tier to its sort position. Mid and medium share a tier;
// unknown values fall into the middle tier rather than sorting to an end.
func (r Rank) Order() int {
	switch r {
	case RankHigh:
		return 0
	case RankLow:
		return 2
	default:
		return 1
	}
}

// VideoType identifies how a course delivers its content.
type VideoType string

const (
	VideoTypeHLS             VideoType = "hls"
	VideoTypeWistia          VideoType = "wistia"
	VideoTypeYouTube         VideoType = "youtube"
	VideoTypeInternetArchive VideoType = "internetarchive"
	VideoTypeRedirect        VideoType = "redirect"
)

// Video is one (title, source locator) pair in a course's ordered video list.
type Video struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SyllabusItem is one entry of a course syllabus.
type SyllabusItem struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Duration  string `json:"duration"`
	Completed bool   `json:"completed"`
}

// RatingBreakdown counts ratings per star value.
type RatingBreakdown struct {
	One   int `json:"1"`
	Two   int `json:"2"`
	Three int `json:"3"`
	Four  int `json:"4"`
	Five  int `json:"5"`
}

// Rating is a course's aggregate rating.
type Rating struct {
	Average   float64         `json:"average"`
	Count     int             `json:"count"`
	Breakdown RatingBreakdown `json:"breakdown"`
}

// StringList accepts a JSON string, a JSON array of strings, or null.
// Older course files store a single subsection as a bare string; newer ones
// use an array. Both decode into the same slice.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = StringList(many)
		return nil
	}

	// null or an unexpected shape; treat as absent rather than failing the file
	*l = nil
	return nil
}

// Course is a fully normalized course record: every optional field filled with
// its declared default and the instructor linkage resolved against the teacher
// registry. Courses are never mutated after loading.
type Course struct {
	ID                    string         `json:"_id"`
	Name                  string         `json:"courseName"`
	Category              string         `json:"coursecategory"`
	ViewType              string         `json:"viewtype"`
	Description           string         `json:"des"`
	Copyright             bool           `json:"copyright"`
	TeacherID             string         `json:"teacherId"`
	InstructorSlug        string         `json:"instructorSlug"`
	InstructorName        string         `json:"instructorname"`
	InstructorDisplayName string         `json:"instructorDisplayName"`
	TeacherImage          string         `json:"teacherImage"`
	InstructorImage       string         `json:"imageofinstructur"`
	Image                 string         `json:"imageofcourse"`
	Audio                 string         `json:"audio"`
	Cost                  float64        `json:"cost"`
	VideoType             VideoType      `json:"videoType"`
	RedirectURL           string         `json:"redirecturl,omitempty"`
	RedirectSyllabus      []string       `json:"redirectsyllabus"`
	Subsections           StringList     `json:"subsection,omitempty"`
	Videos                []Video        `json:"videos"`
	Rank                  Rank           `json:"rank"`
	Homepage              bool           `json:"homepage"`
	Syllabus              []SyllabusItem `json:"syllabus"`
	WhatYouWillLearn      []string       `json:"whatYouWillLearn"`
	Requirements          []string       `json:"requirements"`
	Rating                Rating         `json:"rating"`
	Duration              string         `json:"duration"`
	Level                 string         `json:"level"`
	Language              string         `json:"language"`
	StudentsEnrolled      int            `json:"studentsEnrolled"`
	LastUpdated           string         `json:"lastUpdated"`
	Features              []string       `json:"features"`
}

// VideoSummary carries only the length of a course's video list.
type VideoSummary struct {
	Length int `json:"length"`
}

// LightCourse is the reduced listing-page projection of a Course: the full
// video list is replaced by its count to bound payload size. It is derived
// from a Course and never constructed independently.
type LightCourse struct {
	ID                    string       `json:"_id"`
	Name                  string       `json:"courseName"`
	Category              string       `json:"coursecategory"`
	Description           string       `json:"des"`
	TeacherID             string       `json:"teacherId"`
	InstructorSlug        string       `json:"instructorSlug"`
	InstructorName        string       `json:"instructorname"`
	InstructorDisplayName string       `json:"instructorDisplayName"`
	InstructorImage       string       `json:"imageofinstructur"`
	Image                 string       `json:"imageofcourse"`
	Audio                 string       `json:"audio"`
	Cost                  float64      `json:"cost"`
	VideoType             VideoType    `json:"videoType"`
	RedirectURL           string       `json:"redirecturl,omitempty"`
	RedirectSyllabus      []string     `json:"redirectsyllabus"`
	Subsections           StringList   `json:"subsection,omitempty"`
	Videos                VideoSummary `json:"videos"`
	Rank                  Rank         `json:"rank"`
	Homepage              bool         `json:"homepage"`
	Rating                Rating       `json:"rating"`
	Level                 string       `json:"level"`
	WhatYouWillLearn      []string     `json:"whatYouWillLearn"`
	Duration              string       `json:"duration"`
	Language              string       `json:"language"`
	StudentsEnrolled      int          `json:"studentsEnrolled"`
	LastUpdated           string       `json:"lastUpdated"`
	Requirements          []string     `json:"requirements"`
	Features              []string     `json:"features"`
}

// Light derives the listing projection of a course.
func (c Course) Light() LightCourse {
	return LightCourse{
		ID:                    c.ID,
		Name:                  c.Name,
		Category:              c.Category,
		Description:           c.Description,
		TeacherID:             c.TeacherID,
		InstructorSlug:        c.InstructorSlug,
		InstructorName:        c.InstructorName,
		InstructorDisplayName: c.InstructorDisplayName,
		InstructorImage:       c.TeacherImage,
		Image:                 c.Image,
		Audio:                 c.Audio,
		Cost:                  c.Cost,
		VideoType:             c.VideoType,
		RedirectURL:           c.RedirectURL,
		RedirectSyllabus:      c.RedirectSyllabus,
		Subsections:           c.Subsections,
		Videos:                VideoSummary{Length: len(c.Videos)},
		Rank:                  c.Rank,
		Homepage:              c.Homepage,
		Rating:                c.Rating,
		Level:                 c.Level,
		WhatYouWillLearn:      c.WhatYouWillLearn,
		Duration:              c.Duration,
		Language:              c.Language,
		StudentsEnrolled:      c.StudentsEnrolled,
		LastUpdated:           c.LastUpdated,
		Requirements:          c.Requirements,
		Features:              c.Features,
	}
}

// SocialLinks is the fixed set of optional profile links on a teacher record.
type SocialLinks struct {
	YouTube   string `json:"youtube,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

// TeacherProfile is one instructor profile record. After loading, ID is always
// the normalized form of id-or-displayName-or-name, and Name and DisplayName
// default to each other when one is absent.
type TeacherProfile struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	DisplayName    string      `json:"displayName"`
	Bio            string      `json:"bio"`
	Expertise      []string    `json:"expertise"`
	Experience     string      `json:"experience"`
	StudentsHelped string      `json:"studentsHelped"`
	Specialization string      `json:"specialization"`
	TeachingStyle  string      `json:"teachingStyle"`
	Achievements   []string    `json:"achievements"`
	Image          string      `json:"image"`
	SocialLinks    SocialLinks `json:"socialLinks"`
}

// TeacherSummary is the aggregate produced by folding the course corpus per
// instructor key.
type TeacherSummary struct {
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	CourseCount int      `json:"courseCount"`
	Categories  []string `json:"categories"`
}

// Category is one top-level course grouping. TotalCourses is derived from the
// current corpus on every read, never stored.
type Category struct {
	ID           string `json:"_id"`
	Name         string `json:"category"`
	Description  string `json:"des"`
	Image        string `json:"imageofcategory"`
	TotalCourses int    `json:"totalcourse"`
	Rank         Rank   `json:"rank"`
}

// BlogLink is a titled URL inside a blog post.
type BlogLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// BlogFAQ is a question/answer pair on a blog post.
type BlogFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BlogTroubleshooting pairs a known issue with its fix.
type BlogTroubleshooting struct {
	Issue    string `json:"issue"`
	Solution string `json:"solution"`
}

// BlogPost is one blog entry.
type BlogPost struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Description         string                `json:"description"`
	Image               string                `json:"image"`
	Content             string                `json:"content,omitempty"`
	Requirements        []string              `json:"requirements"`
	YouTubeTutorialLink string                `json:"youtubeTutorialLink,omitempty"`
	Steps               []string              `json:"steps"`
	Links               []BlogLink            `json:"links"`
	Category            string                `json:"category"`
	Tags                []string              `json:"tags"`
	Featured            bool                  `json:"featured,omitempty"`
	Benefits            []string              `json:"benefits"`
	UseCases            []string              `json:"useCases"`
	Troubleshooting     []BlogTroubleshooting `json:"troubleshooting"`
	FAQs                []BlogFAQ             `json:"faqs"`
	RelatedResources    []BlogLink            `json:"relatedResources"`
	EstimatedTime       string                `json:"estimatedTime,omitempty"`
	Difficulty          string                `json:"difficulty,omitempty"`
	LastUpdated         string                `json:"lastUpdated,omitempty"`
	Author              string                `json:"author,omitempty"`
	ReadingTime         string                `json:"readingTime,omitempty"`
}

// Review is one student review.
type Review struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Review   string  `json:"review"`
	Course   string  `json:"course"`
	Location string  `json:"location"`
}

// ReviewsData is the reviews file payload.
type ReviewsData struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
	TotalReviews  int      `json:"totalReviews"`
}

// Placement is one placement-company record.
type Placement struct {
	ID             int      `json:"id"`
	Company        string   `json:"company"`
	Logo           string   `json:"logo"`
	StudentsPlaced int      `json:"studentsPlaced"`
	AveragePackage string   `json:"averagePackage"`
	Roles          []string `json:"roles"`
}

// PlacementsData is the placements file payload.
type PlacementsData struct {
	Placements          []Placement `json:"placements"`
	TotalStudentsPlaced int         `json:"totalStudentsPlaced"`
	AveragePackage      string      `json:"averagePackage"`
}
