// Package services holds the clinic's fixed service catalog. The catalog
// is marketing content, not operator-editable data, so it lives in code
// rather than in the database.
package services

type Pricing struct {
	Starting string `json:"starting"`
	Note     string `json:"note"`
}

type Service struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Image            string   `json:"image"`
	Features         []string `json:"features"`
	Benefits         []string `json:"benefits"`
	Pricing          Pricing  `json:"pricing"`
	Duration         string   `json:"duration"`
	Frequency        string   `json:"frequency"`
}

var catalog = []Service{
	{
		ID:               "1",
		Title:            "General Health Checkups",
		Slug:             "general-checkup",
		ShortDescription: "Comprehensive wellness exams to keep your pet healthy and happy",
		FullDescription:  "Our general health checkup service provides thorough examinations to ensure your pet maintains optimal health throughout their life. Our experienced veterinarians conduct complete physical assessments, identify potential health issues early, and provide personalized care recommendations for your beloved companion.",
		Image:            "/service_general_checkup.jpg",
		Features: []string{
			"Complete physical examination from nose to tail",
			"Weight and body condition assessment",
			"Heart and lung function evaluation",
			"Dental health inspection",
			"Parasite screening and prevention",
			"Nutritional counseling and diet recommendations",
		},
		Benefits: []string{
			"Early detection of potential health problems",
			"Preventive care to avoid costly treatments later",
			"Extended lifespan through proactive health management",
			"Personalized health and wellness plan",
		},
		Pricing:   Pricing{Starting: "$75", Note: "Prices vary based on pet size and specific needs"},
		Duration:  "30-45 minutes",
		Frequency: "Annually for young pets, bi-annually for seniors",
	},
	{
		ID:               "2",
		Title:            "Inpatient & Emergency Care",
		Slug:             "emergency-care",
		ShortDescription: "24/7 emergency services and comfortable inpatient facilities for your pet's recovery",
		FullDescription:  "When your pet faces a medical emergency or requires hospitalization, our state-of-the-art inpatient and emergency care facilities are here around the clock. We provide immediate medical attention, advanced diagnostic tools, and compassionate care in comfortable, monitored environments.",
		Image:            "/service_inpatient.jpg",
		Features: []string{
			"24/7 emergency veterinary services",
			"Fully equipped intensive care unit (ICU)",
			"Advanced diagnostic imaging (X-ray, ultrasound)",
			"In-house laboratory for rapid test results",
			"Continuous patient monitoring",
			"Pain management and comfort care",
		},
		Benefits: []string{
			"Immediate care when every minute counts",
			"Experienced emergency veterinarians and nurses",
			"Comfortable recovery rooms with climate control",
			"Regular updates to pet owners",
		},
		Pricing:   Pricing{Starting: "$150", Note: "Emergency exam fee; treatment costs vary"},
		Duration:  "Varies by condition",
		Frequency: "As needed for emergencies",
	},
	{
		ID:               "3",
		Title:            "Vaccination & Prevention",
		Slug:             "vaccination",
		ShortDescription: "Protect your pet from preventable diseases with our comprehensive vaccination programs",
		FullDescription:  "Prevention is the cornerstone of good pet health. Our vaccination and preventive care services protect your furry friends from serious, potentially life-threatening diseases. We create customized vaccination schedules based on your pet's age, lifestyle, and risk factors.",
		Image:            "/sample_pet_dog_02.jpg",
		Features: []string{
			"Core vaccination series (Rabies, Distemper, Parvovirus)",
			"Puppy and kitten vaccination programs",
			"Annual booster vaccinations",
			"Heartworm prevention and testing",
			"Flea and tick prevention",
			"Microchip identification",
		},
		Benefits: []string{
			"Protection from deadly infectious diseases",
			"Cost-effective compared to treating diseases",
			"Compliance with local pet regulations",
			"Peace of mind during boarding and travel",
		},
		Pricing:   Pricing{Starting: "$45", Note: "Package pricing available for multiple vaccines"},
		Duration:  "15-30 minutes",
		Frequency: "Initial series, then annually or as recommended",
	},
	{
		ID:               "4",
		Title:            "Grooming & Hygiene",
		Slug:             "grooming",
		ShortDescription: "Professional grooming services to keep your pet looking and feeling their best",
		FullDescription:  "Our professional grooming services go beyond aesthetics: they are essential for your pet's health and wellbeing. Our certified groomers provide gentle, stress-free grooming experiences in a safe, clean environment, from breed-specific cuts to medicated baths.",
		Image:            "/service_grooming.jpg",
		Features: []string{
			"Breed-specific haircuts and styling",
			"Bathing with premium pet-safe products",
			"Nail trimming and paw care",
			"Ear cleaning and inspection",
			"De-shedding treatments",
			"Medicated baths for skin conditions",
		},
		Benefits: []string{
			"Healthier skin and coat",
			"Early detection of skin issues and parasites",
			"Reduced shedding at home",
			"A clean, comfortable, happy pet",
		},
		Pricing:   Pricing{Starting: "$50", Note: "Price depends on breed, size and coat condition"},
		Duration:  "1-3 hours",
		Frequency: "Every 4-8 weeks depending on breed and coat type",
	},
	{
		ID:               "5",
		Title:            "Dental Care",
		Slug:             "dental-care",
		ShortDescription: "Complete dental services to protect your pet's teeth, gums and overall health",
		FullDescription:  "Dental disease is one of the most common, and most overlooked, health problems in pets. Our dental care services cover everything from routine cleanings to extractions, performed under safe anesthesia with full monitoring, so your pet keeps a healthy mouth for life.",
		Image:            "/service_dental.jpg",
		Features: []string{
			"Comprehensive oral examinations",
			"Professional cleaning and polishing under anesthesia",
			"Digital dental X-rays",
			"Tooth extractions when necessary",
			"Home dental care guidance",
		},
		Benefits: []string{
			"Prevention of painful dental disease",
			"Fresher breath",
			"Protection of heart, liver and kidneys from oral bacteria",
			"Longer, more comfortable life",
		},
		Pricing:   Pricing{Starting: "$300", Note: "Includes anesthesia and monitoring; extractions extra"},
		Duration:  "2-4 hours including recovery",
		Frequency: "Annually, or more often for pets with dental disease",
	},
	{
		ID:               "6",
		Title:            "Surgery & Procedures",
		Slug:             "surgery",
		ShortDescription: "Advanced surgical care with modern facilities and experienced veterinary surgeons",
		FullDescription:  "From routine spay and neuter procedures to complex soft-tissue and orthopedic surgery, our surgical team combines modern equipment with careful anesthetic protocols and attentive post-operative care to give your pet the safest possible outcome.",
		Image:            "/service_surgery.jpg",
		Features: []string{
			"Spay and neuter procedures",
			"Soft tissue and orthopedic surgery",
			"Pre-surgical bloodwork and assessment",
			"Modern anesthesia with continuous monitoring",
			"Post-operative pain management",
			"Recovery care and follow-up visits",
		},
		Benefits: []string{
			"Experienced, board-certified surgical team",
			"Reduced risk through thorough pre-op screening",
			"Comfortable, monitored recovery",
			"Clear aftercare instructions for home",
		},
		Pricing:   Pricing{Starting: "$400", Note: "Estimate provided after pre-surgical consultation"},
		Duration:  "1-4 hours depending on procedure",
		Frequency: "As needed based on medical condition",
	},
}

// All returns the full catalog in display order.
func All() []Service {
	return catalog
}

// BySlug looks up one service by its URL slug.
func BySlug(slug string) (*Service, bool) {
	for i := range catalog {
		if catalog[i].Slug == slug {
			return &catalog[i], true
		}
	}
	return nil, false
}
