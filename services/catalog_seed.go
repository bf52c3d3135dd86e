package services

import "github.com/vnkhanh/e-academy-backend/models"

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }

// SampleResources trả về bản sao dữ liệu mẫu của catalog
func SampleResources() []models.Resource {
	return []models.Resource{
		{
			ID:            "1",
			Title:         "Machine Learning for Beginners: A Comprehensive Overview",
			Authors:       []string{"Jane Smith", "John Doe"},
			Type:          models.TypePaper,
			Year:          2022,
			Publisher:     strPtr("Journal of Artificial Intelligence"),
			Category:      []string{"Computer Science", "Artificial Intelligence", "Machine Learning"},
			Abstract:      strPtr("This paper provides a comprehensive overview of machine learning concepts, techniques, and applications for beginners. It covers supervised and unsupervised learning, neural networks, and evaluation metrics."),
			Access:        models.AccessOpen,
			CitationCount: intPtr(45),
		},
		{
			ID:            "2",
			Title:         "Introduction to Quantum Computing: Principles and Applications",
			Authors:       []string{"Robert Chen", "Maria Garcia", "David Kim"},
			Type:          models.TypeBook,
			Year:          2021,
			Publisher:     strPtr("Academic Press"),
			Category:      []string{"Physics", "Computer Science", "Quantum Computing"},
			Abstract:      strPtr("This book introduces the fundamental principles of quantum computing, including quantum bits, gates, and algorithms. It provides practical examples and explores potential applications in cryptography, optimization, and simulation."),
			Access:        models.AccessStudent,
			CitationCount: intPtr(87),
		},
		{
			ID:        "3",
			Title:     "Advanced Calculus and Its Applications in Engineering",
			Authors:   []string{"Michael Johnson"},
			Type:      models.TypeCourse,
			Year:      2023,
			Publisher: strPtr("University of Technology"),
			Category:  []string{"Mathematics", "Engineering", "Calculus"},
			Abstract:  strPtr("A comprehensive course on advanced calculus techniques and their applications in various engineering disciplines. Covers multivariable calculus, vector analysis, and differential equations with practical examples."),
			Access:    models.AccessFaculty,
		},
		{
			ID:            "4",
			Title:         "The Role of Microbiomes in Human Health and Disease",
			Authors:       []string{"Sarah Williams", "James Lee", "Emily Brown", "Thomas Wilson"},
			Type:          models.TypePaper,
			Year:          2022,
			Journal:       strPtr("Journal of Microbiology"),
			Category:      []string{"Biology", "Medicine", "Microbiology"},
			Abstract:      strPtr("This paper reviews the latest research on human microbiomes and their impact on health and disease. It discusses the gut microbiome, skin microbiome, and the potential of microbiome-based therapies."),
			Access:        models.AccessRestricted,
			CitationCount: intPtr(132),
		},
		{
			ID:            "5",
			Title:         "Climate Change Impacts on Marine Ecosystems",
			Authors:       []string{"Elizabeth Martinez", "Richard Taylor"},
			Type:          models.TypePaper,
			Year:          2023,
			Journal:       strPtr("Environmental Science Journal"),
			Category:      []string{"Environmental Science", "Marine Biology", "Climate Science"},
			Abstract:      strPtr("An analysis of how climate change affects marine ecosystems, including coral reefs, fish populations, and ocean acidification. The paper presents data from long-term studies and models future scenarios."),
			Access:        models.AccessOpen,
			CitationCount: intPtr(28),
		},
		{
			ID:            "6",
			Title:         "Ethical Considerations in Artificial Intelligence Development",
			Authors:       []string{"Daniel Park", "Olivia Wilson"},
			Type:          models.TypePaper,
			Year:          2021,
			Publisher:     strPtr("Ethics in Technology Conference"),
			Category:      []string{"Computer Science", "Ethics", "Artificial Intelligence"},
			Abstract:      strPtr("This paper explores the ethical challenges in AI development, including bias, privacy, transparency, and accountability. It proposes a framework for ethical AI design and implementation."),
			Access:        models.AccessOpen,
			CitationCount: intPtr(76),
		},
		{
			ID:            "7",
			Title:         "Fundamentals of Organic Chemistry",
			Authors:       []string{"Jennifer Adams", "Christopher Nelson"},
			Type:          models.TypeBook,
			Year:          2020,
			Publisher:     strPtr("Science Publishing House"),
			Category:      []string{"Chemistry", "Organic Chemistry"},
			Abstract:      strPtr("A comprehensive textbook covering the principles of organic chemistry, including molecular structure, reaction mechanisms, and synthesis techniques. Includes practice problems and laboratory experiments."),
			Access:        models.AccessStudent,
			CitationCount: intPtr(104),
		},
		{
			ID:            "8",
			Title:         "Introduction to International Relations: Theories and Approaches",
			Authors:       []string{"Alexander Thompson", "Sophia Rodriguez"},
			Type:          models.TypeBook,
			Year:          2022,
			Publisher:     strPtr("Global Studies Press"),
			Category:      []string{"Social Sciences", "International Relations", "Political Science"},
			Abstract:      strPtr("This book introduces major theories and approaches in international relations, including realism, liberalism, constructivism, and critical theory. It applies these frameworks to contemporary global issues."),
			Access:        models.AccessStudent,
			CitationCount: intPtr(53),
		},
	}
}
