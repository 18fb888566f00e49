package user

// firstNames also supplies middle names.
var firstNames = []string{
	"Aaron", "Abigail", "Adrian", "Alice", "Amelia", "Andre", "Angela", "Arthur",
	"Audrey", "Beatrice", "Bennett", "Bianca", "Caleb", "Camila", "Carlos", "Chloe",
	"Clara", "Colin", "Dahlia", "Damian", "Delia", "Dominic", "Eleanor", "Elias",
	"Eliza", "Emmett", "Esther", "Felix", "Fiona", "Gabriel", "Grace", "Hannah",
	"Harvey", "Hazel", "Henry", "Imogen", "Isaac", "Ivy", "Jasper", "Julia",
	"Julian", "Kara", "Leo", "Lena", "Lucas", "Lydia", "Malcolm", "Maya",
	"Miles", "Nadia", "Naomi", "Nathan", "Nora", "Oliver", "Olivia", "Oscar",
	"Paige", "Peter", "Philip", "Quinn", "Rafael", "Rosa", "Ruby", "Samuel",
	"Sofia", "Stella", "Theo", "Tessa", "Tobias", "Uma", "Victor", "Vera",
	"Violet", "Walter", "Wesley", "Willa", "Xavier", "Yara", "Zachary", "Zoe",
}

var lastNames = []string{
	"Abbott", "Acosta", "Barker", "Barnes", "Bishop", "Blake", "Bowen", "Boyd",
	"Burke", "Castro", "Chandler", "Chen", "Cohen", "Cole", "Dalton", "Dawson",
	"Delgado", "Duncan", "Ellis", "Farrell", "Fisher", "Fleming", "Ford", "Fuller",
	"Garner", "Gibson", "Graham", "Hansen", "Hardy", "Hayes", "Holland", "Hopkins",
	"Ingram", "Jensen", "Keller", "Klein", "Lambert", "Larsen", "Lawson", "Lucas",
	"Marsh", "Meyer", "Molina", "Nash", "Norris", "Novak", "Oliver", "Owens",
	"Palmer", "Pearson", "Quinn", "Rhodes", "Riley", "Romero", "Saunders", "Schultz",
	"Shaw", "Silva", "Sutton", "Tanaka", "Tucker", "Vance", "Vargas", "Wagner",
	"Warren", "Weaver", "Webb", "Wolfe", "Yates", "Zimmerman",
}
