package seed

import "officesite/internal/models"

// Catalog is the reference data the seeder guarantees. Offices and
// Testimonials are keyed by location slug.
type Catalog struct {
	Locations    []models.Location
	Offices      map[string][]models.Office
	Testimonials map[string][]models.Testimonial
}

const cdn = "https://cdn.officesite.in/images"

// DefaultCatalog returns the cities the site launches with, plus the offices
// and testimonials of the featured ones.
func DefaultCatalog() Catalog {
	return Catalog{
		Locations: []models.Location{
			{
				Name:         "Mumbai",
				Slug:         "mumbai",
				Description:  "Premium virtual office addresses in Mumbai's key business districts, including BKC, Andheri and Lower Parel.",
				Address:      "Level 9, Platina, G Block, Bandra Kurla Complex, Mumbai 400051",
				Email:        "mumbai@officesite.in",
				Phone:        "+91 22 4890 1100",
				HeroImageURL: cdn + "/cities/mumbai.jpg",
			},
			{
				Name:         "Pune",
				Slug:         "pune",
				Description:  "Virtual offices for GST registration and business presence across Pune's IT and commercial hubs.",
				Address:      "Office 402, Amar Business Zone, Baner Road, Pune 411045",
				Email:        "pune@officesite.in",
				Phone:        "+91 20 6710 2200",
				HeroImageURL: cdn + "/cities/pune.jpg",
			},
			{
				Name:         "Delhi",
				Slug:         "delhi",
				Description:  "Registered business addresses in Connaught Place, Nehru Place and other prime Delhi locations.",
				Address:      "4th Floor, Statesman House, Barakhamba Road, New Delhi 110001",
				Email:        "delhi@officesite.in",
				Phone:        "+91 11 4567 3300",
				HeroImageURL: cdn + "/cities/delhi.jpg",
			},
			{
				Name:         "Bangalore",
				Slug:         "bangalore",
				Description:  "Virtual office spaces in India's startup capital, from MG Road to Koramangala and Whitefield.",
				Address:      "Level 14, Prestige Obelisk, Kasturba Road, Bangalore 560001",
				Email:        "bangalore@officesite.in",
				Phone:        "+91 80 4718 4400",
				HeroImageURL: cdn + "/cities/bangalore.jpg",
			},
			{
				Name:         "Hyderabad",
				Slug:         "hyderabad",
				Description:  "Business addresses in HITEC City, Gachibowli and Banjara Hills with mail handling included.",
				Address:      "Level 5, Block B, Cyber Towers, HITEC City, Hyderabad 500081",
				Email:        "hyderabad@officesite.in",
				Phone:        "+91 40 4020 5500",
				HeroImageURL: cdn + "/cities/hyderabad.jpg",
			},
			{
				Name:         "Chennai",
				Slug:         "chennai",
				Description:  "Virtual offices on Anna Salai and OMR for companies expanding into Tamil Nadu.",
				Address:      "7th Floor, Gee Gee Crystal, Dr Radhakrishnan Salai, Chennai 600004",
				Email:        "chennai@officesite.in",
				Phone:        "+91 44 4312 6600",
				HeroImageURL: cdn + "/cities/chennai.jpg",
			},
			{
				Name:         "Kolkata",
				Slug:         "kolkata",
				Description:  "Registered addresses in Park Street and Salt Lake Sector V for eastern India operations.",
				Address:      "3rd Floor, Park Plaza, 71 Park Street, Kolkata 700016",
				Email:        "kolkata@officesite.in",
				Phone:        "+91 33 4068 7700",
				HeroImageURL: cdn + "/cities/kolkata.jpg",
			},
			{
				Name:         "Ahmedabad",
				Slug:         "ahmedabad",
				Description:  "Virtual offices on SG Highway and in GIFT City for Gujarat GST and company registration.",
				Address:      "Office 1103, Titanium City Centre, Satellite Road, Ahmedabad 380015",
				Email:        "ahmedabad@officesite.in",
				Phone:        "+91 79 4897 8800",
				HeroImageURL: cdn + "/cities/ahmedabad.jpg",
			},
			{
				Name:         "Gurgaon",
				Slug:         "gurgaon",
				Description:  "Corporate addresses on Golf Course Road and Cyber City for NCR businesses.",
				Address:      "Level 12, Tower B, Unitech Cyber Park, Sector 39, Gurgaon 122002",
				Email:        "gurgaon@officesite.in",
				Phone:        "+91 124 471 9900",
				HeroImageURL: cdn + "/cities/gurgaon.jpg",
			},
		},
		Offices: map[string][]models.Office{
			"pune": {
				{
					Name:       "Baner Business Centre",
					Address:    "Office 402, Amar Business Zone, Baner Road, Pune 411045",
					Features:   []string{"GST registration address", "Mail handling", "Meeting room access"},
					BadgeLabel: "Most Popular",
					BadgeColor: "green",
				},
				{
					Name:       "Hinjewadi Tech Park",
					Address:    "Level 3, Quadron Business Park, Hinjewadi Phase 2, Pune 411057",
					Features:   []string{"Company registration address", "Call answering", "Day office credits"},
					BadgeLabel: "IT Hub",
					BadgeColor: "blue",
				},
				{
					Name:       "Koregaon Park Suites",
					Address:    "2nd Floor, Nyati Empress, North Main Road, Koregaon Park, Pune 411001",
					Features:   []string{"Premium address", "Mail scanning", "Dedicated receptionist"},
					BadgeLabel: "Premium",
					BadgeColor: "purple",
				},
			},
			"mumbai": {
				{
					Name:       "BKC Platina",
					Address:    "Level 9, Platina, G Block, Bandra Kurla Complex, Mumbai 400051",
					Features:   []string{"GST registration address", "Mail handling", "Boardroom access"},
					BadgeLabel: "Premium",
					BadgeColor: "purple",
				},
				{
					Name:       "Andheri East Hub",
					Address:    "5th Floor, Times Square, Andheri-Kurla Road, Andheri East, Mumbai 400059",
					Features:   []string{"Company registration address", "Mail forwarding", "Meeting room credits"},
					BadgeLabel: "Best Value",
					BadgeColor: "green",
				},
			},
		},
		Testimonials: map[string][]models.Testimonial{
			"pune": {
				{
					Author:    "Rohan Deshpande",
					Company:   "Sahyadri Organics",
					Content:   "We got our GST registration in Pune within a week using the Baner address. Mail is scanned the same day it arrives.",
					AvatarURL: cdn + "/avatars/rohan-deshpande.jpg",
					Rating:    5,
				},
				{
					Author:    "Priya Kulkarni",
					Company:   "Kulkarni Textiles",
					Content:   "Their team set up our Amazon and Flipkart seller accounts alongside the virtual office. One vendor for everything.",
					AvatarURL: cdn + "/avatars/priya-kulkarni.jpg",
					Rating:    5,
				},
				{
					Author:    "Amit Joshi",
					Company:   "CloudNest Software",
					Content:   "The Hinjewadi address gave us a credible presence near our clients without signing a lease.",
					AvatarURL: cdn + "/avatars/amit-joshi.jpg",
					Rating:    4.5,
				},
			},
		},
	}
}
