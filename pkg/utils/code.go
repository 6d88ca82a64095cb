package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Sem 0/O e 1/I para facilitar a digitação pelo cliente
const accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const accessCodeLength = 10

func GenerateAccessCode() (string, error) {
	return gonanoid.Generate(accessCodeAlphabet, accessCodeLength)
}
