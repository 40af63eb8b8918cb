package memory

import "cisoevents/internal/domain"

// Seed is the fixed initial dataset. Events seed the mutable store; the rest
// is read-only and served through the catalog repository.
type Seed struct {
	Events      []*domain.Event
	Speakers    []*domain.Speaker
	AgendaItems []*domain.AgendaItem
	Podcasts    []*domain.Podcast
	Sponsors    *domain.SponsorTiers
	Stats       []*domain.Stat
}

// DefaultSeed returns the dataset the site ships with.
func DefaultSeed() *Seed {
	return &Seed{
		Events: []*domain.Event{
			{
				ID:          "evt-1",
				Title:       "CISOevents 2026",
				Year:        2026,
				StartDate:   "2026-08-28",
				EndDate:     "2026-08-29",
				Location:    "Metro Toronto Convention Centre, Toronto, Canada",
				Description: "The premier cybersecurity and AI leadership summit. Two days of keynotes, panels, and workshops with 500+ security executives.",
				Image:       "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&q=80",
				Status:      domain.EventStatusUpcoming,
				Attendees:   "500+",
				Tags:        []string{"Cybersecurity", "AI", "Leadership"},
			},
			{
				ID:          "evt-2",
				Title:       "CISOevents 2025",
				Year:        2025,
				StartDate:   "2025-09-12",
				EndDate:     "2025-09-13",
				Location:    "Vancouver Convention Centre, Vancouver, Canada",
				Description: "Our west-coast edition focused on cloud security, zero trust, and the emerging AI threat landscape.",
				Image:       "https://images.unsplash.com/photo-1511578314322-379afb476865?w=800&q=80",
				Status:      domain.EventStatusPast,
				Attendees:   "420",
				Tags:        []string{"Cybersecurity", "Cloud", "Zero Trust"},
			},
			{
				ID:          "evt-3",
				Title:       "CISOevents 2024",
				Year:        2024,
				StartDate:   "2024-08-23",
				EndDate:     "2024-08-23",
				Location:    "Montreal, Canada",
				Description: "The inaugural CISOevents gathering. A single day of executive briefings and CISO roundtables.",
				Image:       "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?w=800&q=80",
				Status:      domain.EventStatusPast,
				Attendees:   "250",
				Tags:        []string{"Cybersecurity", "Executive"},
			},
		},
		Speakers: []*domain.Speaker{
			{ID: "sp-1", Name: "Sarah Chen", Title: "Chief Information Security Officer", Company: "Northbank Financial", Track: domain.TrackCyber, Photo: "https://i.pravatar.cc/300?img=1", Bio: "Sarah leads security for one of Canada's largest financial institutions, with two decades in threat intelligence and incident response.", LinkedIn: "https://linkedin.com/in/sarahchen"},
			{ID: "sp-2", Name: "Marcus Webb", Title: "VP of AI Research", Company: "Cortex Labs", Track: domain.TrackAI, Photo: "https://i.pravatar.cc/300?img=12", Bio: "Marcus researches adversarial machine learning and the security properties of large language models.", LinkedIn: "https://linkedin.com/in/marcuswebb"},
			{ID: "sp-3", Name: "Priya Raman", Title: "Founder & CEO", Company: "ShieldStart", Track: domain.TrackStartup, Photo: "https://i.pravatar.cc/300?img=5", Bio: "Priya founded ShieldStart to bring enterprise-grade security tooling to early-stage companies.", LinkedIn: "https://linkedin.com/in/priyaraman"},
			{ID: "sp-4", Name: "Alice Cyber", Title: "Director of Threat Research", Company: "Hexagate", Track: domain.TrackCyber, Photo: "https://i.pravatar.cc/300?img=9", Bio: "Alice tracks ransomware crews and publishes widely on extortion economics.", LinkedIn: "https://linkedin.com/in/alicecyber"},
			{ID: "sp-5", Name: "Daniel Okafor", Title: "Head of ML Platform", Company: "Vantage AI", Track: domain.TrackAI, Photo: "https://i.pravatar.cc/300?img=15", Bio: "Daniel builds the guardrails that keep production ML systems safe at scale.", LinkedIn: "https://linkedin.com/in/danielokafor"},
			{ID: "sp-6", Name: "Emma Lindqvist", Title: "Partner", Company: "Foundry Ventures", Track: domain.TrackStartup, Photo: "https://i.pravatar.cc/300?img=20", Bio: "Emma invests in seed-stage security and infrastructure companies across North America.", LinkedIn: "https://linkedin.com/in/emmalindqvist"},
			{ID: "sp-7", Name: "James Park", Title: "CISO", Company: "Meridian Health", Track: domain.TrackCyber, Photo: "https://i.pravatar.cc/300?img=33", Bio: "James secures clinical systems and patient data for a network of forty hospitals.", LinkedIn: "https://linkedin.com/in/jamespark"},
			{ID: "sp-8", Name: "Lena Fischer", Title: "Principal Scientist", Company: "OpenGrid", Track: domain.TrackAI, Photo: "https://i.pravatar.cc/300?img=26", Bio: "Lena works on the intersection of AI safety and critical-infrastructure resilience.", LinkedIn: "https://linkedin.com/in/lenafischer"},
		},
		AgendaItems: []*domain.AgendaItem{
			{ID: "ag-1", Day: 1, StartTime: "09:00", EndTime: "09:45", Title: "Opening Keynote: The State of Cyber 2026", Description: "Where the threat landscape is heading and what it demands of security leaders.", Type: "keynote", Track: domain.TrackCyber, Location: "Main Hall", SpeakerIDs: []string{"sp-1"}},
			{ID: "ag-2", Day: 1, StartTime: "10:00", EndTime: "11:00", Title: "LLMs on the Attack Surface", Description: "How large language models change both offense and defense.", Type: "session", Track: domain.TrackAI, Location: "Room A", SpeakerIDs: []string{"sp-2", "sp-8"}},
			{ID: "ag-3", Day: 1, StartTime: "11:15", EndTime: "12:15", Title: "Founding a Security Company in a Down Market", Description: "A candid panel with founders and investors on building in 2026.", Type: "panel", Track: domain.TrackStartup, Location: "Room B", SpeakerIDs: []string{"sp-3", "sp-6"}},
			{ID: "ag-4", Day: 1, StartTime: "14:00", EndTime: "16:00", Title: "Hands-on: Ransomware Tabletop", Description: "Work through a full extortion incident from detection to disclosure.", Type: "workshop", Track: domain.TrackCyber, Location: "Workshop Lab", SpeakerIDs: []string{"sp-4"}},
			{ID: "ag-5", Day: 2, StartTime: "09:00", EndTime: "09:45", Title: "Fireside: Securing Healthcare at Scale", Description: "A conversation on protecting clinical systems under real-world constraints.", Type: "fireside", Track: domain.TrackCyber, Location: "Main Hall", SpeakerIDs: []string{"sp-7"}},
			{ID: "ag-6", Day: 2, StartTime: "10:00", EndTime: "11:00", Title: "Guardrails for Production ML", Description: "Patterns for keeping ML platforms safe without strangling velocity.", Type: "session", Track: domain.TrackAI, Location: "Room A", SpeakerIDs: []string{"sp-5"}},
			{ID: "ag-7", Day: 2, StartTime: "11:15", EndTime: "12:00", Title: "Startup Pitch Showdown", Description: "Eight early-stage security startups pitch to a panel of CISOs and VCs.", Type: "pitch", Track: domain.TrackStartup, Location: "Main Hall", SpeakerIDs: []string{"sp-6"}},
			{ID: "ag-8", Day: 2, StartTime: "16:00", EndTime: "17:00", Title: "Closing Panel: The CISO Agenda for 2027", Description: "Security leaders set out the priorities for the year ahead.", Type: "panel", Track: domain.TrackCyber, Location: "Main Hall", SpeakerIDs: []string{"sp-1", "sp-7"}},
		},
		Podcasts: []*domain.Podcast{
			{ID: "pod-1", Title: "Inside the Breach: Lessons from a Hospital Ransomware Attack", Description: "James Park walks through the incident that reshaped Meridian Health's security program.", YouTubeID: "dQw4w9WgXcQ", Thumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", Duration: "48:12", Views: "12K", Featured: true},
			{ID: "pod-2", Title: "Adversarial ML, Explained", Description: "Marcus Webb on how attackers poison, evade, and extract machine-learning systems.", YouTubeID: "9bZkp7q19f0", Thumbnail: "https://img.youtube.com/vi/9bZkp7q19f0/hqdefault.jpg", Duration: "36:40", Views: "8.4K", Featured: false},
			{ID: "pod-3", Title: "From Seed to Series B in Security", Description: "Priya Raman and Emma Lindqvist on what security founders get wrong about go-to-market.", YouTubeID: "kJQP7kiw5Fk", Thumbnail: "https://img.youtube.com/vi/kJQP7kiw5Fk/hqdefault.jpg", Duration: "41:05", Views: "6.1K", Featured: false},
			{ID: "pod-4", Title: "The Economics of Ransomware", Description: "Alice Cyber breaks down who pays, who doesn't, and why the numbers keep climbing.", YouTubeID: "3JZ_D3ELwOQ", Thumbnail: "https://img.youtube.com/vi/3JZ_D3ELwOQ/hqdefault.jpg", Duration: "52:30", Views: "15K", Featured: false},
			{ID: "pod-5", Title: "Zero Trust Without the Buzzwords", Description: "Sarah Chen on what a realistic zero-trust roadmap looks like for a large enterprise.", YouTubeID: "L_jWHffIx5E", Thumbnail: "https://img.youtube.com/vi/L_jWHffIx5E/hqdefault.jpg", Duration: "44:18", Views: "9.7K", Featured: false},
		},
		Sponsors: &domain.SponsorTiers{
			Platinum: []*domain.Sponsor{
				{ID: "sn-1", Name: "SentinelWorks"},
				{ID: "sn-2", Name: "Apex Cloud Security"},
			},
			Gold: []*domain.Sponsor{
				{ID: "sn-3", Name: "Hexagate"},
				{ID: "sn-4", Name: "Vantage AI"},
				{ID: "sn-5", Name: "Northbank Financial"},
			},
			Silver: []*domain.Sponsor{
				{ID: "sn-6", Name: "ShieldStart"},
				{ID: "sn-7", Name: "OpenGrid"},
				{ID: "sn-8", Name: "Foundry Ventures"},
				{ID: "sn-9", Name: "Meridian Health"},
			},
		},
		Stats: []*domain.Stat{
			{Label: "Attendees", Value: "500+"},
			{Label: "Speakers", Value: "40+"},
			{Label: "Sessions", Value: "30+"},
			{Label: "Years Running", Value: "3"},
		},
	}
}
