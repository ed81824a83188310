package schema

// Taster identifies the button/control group of a driver input event
// (spec.md GLOSSARY). Values recovered from the Zusi 3 TCP reference
// client (original_source/src/include/Zusi3TCPData.h).
type Taster = uint16

const (
	TasterKeineTastaturbedienung   Taster = 0
	TasterFahrschalter             Taster = 1
	TasterDynamischeBremse         Taster = 2
	TasterAFB                      Taster = 3
	TasterFuehrerbremsventil       Taster = 4
	TasterZusatzbremsventil        Taster = 5
	TasterGang                     Taster = 6
	TasterRichtungsschalter        Taster = 7
	TasterStufenschalter           Taster = 8
	TasterSander                   Taster = 9
	TasterTueren                   Taster = 10
	TasterLicht                    Taster = 11
	TasterPfeife                   Taster = 12
	TasterGlocke                   Taster = 13
	TasterLuefter                  Taster = 14
	TasterZugsicherung             Taster = 15
	TasterSifa                     Taster = 16
	TasterHauptschalter            Taster = 17
	TasterGruppenschalter          Taster = 18
	TasterSchleuderschutz          Taster = 19
	TasterMgBremse                 Taster = 20
	TasterLokbremseEntlueften      Taster = 21
	TasterProgrammsteuerung        Taster = 42
	TasterStromabnehmer            Taster = 43
	TasterFuehrerstandssicht       Taster = 44
	TasterLuftpresserAus           Taster = 45
	TasterZugfunk                  Taster = 46
	TasterLZB                      Taster = 47
	TasterNotaus                   Taster = 68
	TasterFederspeicherbremse      Taster = 69
	TasterBatterieHauptschalterAus Taster = 70
	TasterNBUE                     Taster = 71
	TasterBremsprobefunktion       Taster = 72
	TasterLeistungAus              Taster = 73
)

// Kommando identifies the command within a Taster group.
type Kommando = uint16

const (
	KommandoUnbestimmt          Kommando = 0
	KommandoFahrschalterAufDown Kommando = 1
	KommandoFahrschalterAufUp   Kommando = 2
	KommandoFahrschalterAbDown  Kommando = 3
	KommandoFahrschalterAbUp    Kommando = 4
	KommandoSifaDown            Kommando = 0x39
	KommandoSifaUp              Kommando = 0x3A
	KommandoPfeifeDown          Kommando = 0x45
	KommandoPfeifeUp            Kommando = 0x46
)

// Aktion identifies how the command's position argument should be applied.
type Aktion = uint16

const (
	AktionDefault       Aktion = 0
	AktionDown          Aktion = 1
	AktionUp            Aktion = 2
	AktionAufDown       Aktion = 3
	AktionAufUp         Aktion = 4
	AktionAbDown        Aktion = 5
	AktionAbUp          Aktion = 6
	AktionAbsolut       Aktion = 7
	AktionAbsolut1000er Aktion = 8
)
