package role

// Role identifies one of the fixed card types in the game.
type Role string

const (
	Werewolf     Role = "WEREWOLF"
	Minion       Role = "MINION"
	Seer         Role = "SEER"
	Robber       Role = "ROBBER"
	Troublemaker Role = "TROUBLEMAKER"
	Drunk        Role = "DRUNK"
	Insomniac    Role = "INSOMNIAC"
	Mason        Role = "MASON"
	Villager     Role = "VILLAGER"
)

// NightOrder is the fixed sequence in which roles wake and resolve.
// Villagers never wake and are deliberately absent.
var NightOrder = []Role{
	Werewolf,
	Minion,
	Mason,
	Seer,
	Robber,
	Troublemaker,
	Drunk,
	Insomniac,
}
