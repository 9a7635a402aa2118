package site

import (
	_ "embed"
)

//go:embed content/about.md
var aboutMarkdown string

// GalleryImage is one photo on the gallery page.
type GalleryImage struct {
	Src     string
	Caption string
}

// ArtistShowcase is one playable collaboration on the about page.
type ArtistShowcase struct {
	ArtistName  string
	AlbumArt    string
	TrackTitle  string
	TrackURL    string
	Description string
	Genre       string
}

// CompanyValue is one core-value card on the about page.
type CompanyValue struct {
	Icon        string
	Title       string
	Description string
}

// CompanyStat is one headline figure on the about page.
type CompanyStat struct {
	Value string
	Label string
}

func galleryImages() []GalleryImage {
	return []GalleryImage{
		{Src: "/images/gallery/e1.jpeg", Caption: "Live concert setup with vibrant stage lights"},
		{Src: "/images/gallery/e2.jpeg", Caption: "Corporate event audio-visual arrangement"},
		{Src: "/images/gallery/e3.jpeg", Caption: "Intimate wedding reception sound system"},
		{Src: "/images/gallery/e4.jpeg", Caption: "Music festival main stage production"},
		{Src: "/images/gallery/e5.jpeg", Caption: "Studio recording session in progress"},
		{Src: "/images/gallery/e6.jpeg", Caption: "Outdoor event sound reinforcement"},
		{Src: "/images/gallery/e7.jpeg", Caption: "DJ booth with professional equipment"},
		{Src: "/images/gallery/e8.jpeg", Caption: "Detailed shot of a mixing console"},
		{Src: "/images/gallery/e9.jpeg", Caption: "Team setting up for a large-scale event"},
		{Src: "/images/gallery/e10.jpeg", Caption: "Team setting up for a large-scale event"},
		{Src: "/images/gallery/e11.jpeg", Caption: "Team setting up for a large-scale event"},
		{Src: "/images/gallery/e15.jpeg", Caption: "Team setting up for a large-scale event"},
	}
}

func artistShowcases() []ArtistShowcase {
	return []ArtistShowcase{
		{
			ArtistName:  "Made Kuti",
			AlbumArt:    "/images/artists/Mide.jpeg",
			TrackTitle:  "The Homeland",
			TrackURL:    "https://cdn.trendybeatz.com/audio/Burna-Boy-23.mp3",
			Description: "Song by Busy Signal, Made Kuti, and Morgan Heritage",
			Genre:       "Afrobeat",
		},
		{
			ArtistName:  "Nathaniel Bassey",
			AlbumArt:    "/images/artists/Bassy.jpg",
			TrackTitle:  "The River",
			TrackURL:    "https://cdn.pixabay.com/download/audio/2022/08/04/audio_2d02511475.mp3",
			Description: "We Come Before Your Presence · Nathaniel Bassey · Yahweh Sabaoth · Nathaniel Bassey",
			Genre:       "Gospel",
		},
		{
			ArtistName:  "Naira Marley",
			AlbumArt:    "/images/artists/Naira.jpeg",
			TrackTitle:  "Soapy",
			TrackURL:    "https://cdn.pixabay.com/download/audio/2022/05/23/audio_784133496c.mp3",
			Description: "A chart-topping street anthem recorded and mixed in our studios",
			Genre:       "Afrobeat",
		},
	}
}

func companyValues() []CompanyValue {
	return []CompanyValue{
		{Icon: "Heart", Title: "Passion", Description: "Our work is driven by a deep love for creating incredible audio-visual experiences."},
		{Icon: "Star", Title: "Excellence", Description: "We uphold the highest standards, using top-tier equipment and expert techniques."},
		{Icon: "Users", Title: "Partnership", Description: "We collaborate closely with our clients, treating their vision as our own."},
	}
}

func companyStats() []CompanyStat {
	return []CompanyStat{
		{Value: "10+", Label: "Years of Experience"},
		{Value: "500+", Label: "Successful Events"},
		{Value: "100%", Label: "Client Satisfaction"},
	}
}
