package book

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedCategories returns the static category registry.
func SeedCategories() []Category {
	return []Category{
		{ID: 1, Name: "Biografi"},
		{ID: 2, Name: "Autobiografi"},
		{ID: 3, Name: "Ensiklopedia"},
		{ID: 4, Name: "Kamus"},
		{ID: 5, Name: "Jurnal"},
		{ID: 6, Name: "Sejarah"},
		{ID: 7, Name: "Sains"},
		{ID: 8, Name: "Motivasi"},
		{ID: 9, Name: "Filsafat"},
		{ID: 10, Name: "Fantasi"},
		{ID: 11, Name: "Romance"},
		{ID: 12, Name: "Fiksi Ilmiah"},
		{ID: 13, Name: "Horor"},
		{ID: 14, Name: "Petualangan"},
		{ID: 15, Name: "Misteri"},
		{ID: 16, Name: "Komedi"},
		{ID: 17, Name: "Drama"},
	}
}

// SeedCarousel returns the initially featured book ids.
func SeedCarousel() Carousel {
	return Carousel{1, 2, 3}
}

// SeedBooks returns the initial book collection.
func SeedBooks() []Book {
	return []Book{
		{
			ID:            1,
			Title:         "Dilan 1990",
			Author:        "Pidi Baiq",
			ImageURL:      "https://4.bp.blogspot.com/-B7xdHP4MB8A/WjNTC4pX6MI/AAAAAAAABAs/ddiTCRLvCgcqIzyJBRhF7eGfLXhBSE9FQCK4BGAYYCw/s1600/covernya.jpg",
			CategoryIDs:   []int{11},
			PublishedDate: NewPublishedDate(PrecisionYear, day(2014, time.January, 1)),
			Description:   "Dilan: Dia Adalah Dilanku Tahun 1990 bercerita tentang kisah cinta dua remaja Bandung pada tahun 90an.",
		},
		{
			ID:            2,
			Title:         "Ubur-ubur Lembur",
			Author:        "Raditya Dika",
			ImageURL:      "https://iili.io/HCkmurG.md.jpg",
			CategoryIDs:   []int{17},
			PublishedDate: NewPublishedDate(PrecisionDate, day(2018, time.February, 7)),
			Description:   "Hal kedua yang gue nggak sempat kasih tahu Iman: jadi orang yang dikenal publik harus tahan dengan asumsi-asumsi orang.",
		},
		{
			ID:            3,
			Title:         "Laskar Pelangi",
			Author:        "Andrea Hirata",
			ImageURL:      "https://iili.io/HCkm8Eg.md.jpg",
			CategoryIDs:   []int{14},
			PublishedDate: NewPublishedDate(PrecisionYear, day(2005, time.January, 1)),
			Description:   "Bangunan itu nyaris rubuh. Dindingnya miring bersangga sebalok kayu. Atapnya bocor di mana-mana.",
		},
		{
			ID:            4,
			Title:         "Sebuah Seni Untuk Bersikap Bodo Amat",
			Author:        "Mark Manson",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/4/4b/Sebuah-seni-untuk-bersikap-bodoh-amat.jpg",
			CategoryIDs:   []int{8},
			PublishedDate: NewPublishedDate(PrecisionDate, day(2016, time.September, 13)),
			Description:   "Baginya cuek dan masa bodoh adalah cara sederhana untuk mengarahkan kembali ekspektasi hidup dalam memilih apa yang penting.",
		},
		{
			ID:            5,
			Title:         "React Native Cookbook",
			Author:        "Dan Ward",
			ImageURL:      "https://miro.medium.com/max/766/1*5WF74Gp_XP3I3mmbG3RAzQ.png",
			CategoryIDs:   []int{3},
			PublishedDate: NewPublishedDate(PrecisionDate, day(2016, time.December, 22)),
			Description:   "If you are a developer looking to create mobile applications with maximized code reusability and minimized cost, React Native is what you need.",
		},
		{
			ID:            6,
			Title:         "Matahari",
			Author:        "Tere Liye",
			ImageURL:      "https://cdn.gramedia.com/uploads/items/img20220905_11433462.jpg",
			CategoryIDs:   []int{10},
			PublishedDate: NewPublishedDate(PrecisionDate, day(2022, time.September, 5)),
			Description:   "Kini anak istimewa itu bernama Ali. Sama dengan Seli dan Raib, ia juga berusia 15 tahun, masih kelas X.",
		},
		{
			ID:            7,
			Title:         "Atomic Habits: Perubahan Kecil yang Memberikan Hasil Luar Biasa",
			Author:        "James Clear",
			ImageURL:      "https://cdn.gramedia.com/uploads/items/9786020633176_.Atomic_Habit.jpg",
			CategoryIDs:   []int{8},
			PublishedDate: NewPublishedDate(PrecisionDate, day(2019, time.September, 15)),
			Description:   "Orang mengira ketika Anda ingin mengubah hidup, Anda perlu memikirkan hal-hal besar.",
		},
	}
}
