package app

// MinPlayersToStartGame defines the minimum number of seated bots required to start a round.
const MinPlayersToStartGame = 2
