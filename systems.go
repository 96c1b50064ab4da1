package ndastro

import "time"

//One entry point per registered system, each a shorthand for Ayanamsa(System, t).

func LahiriAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Lahiri, t) }
func RamanAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Raman, t) }
func KrishnamurtiNewAyanamsa(t time.Time) (float64, error) { return Ayanamsa(KrishnamurtiNew, t) }
func FaganBradleyAyanamsa(t time.Time) (float64, error) { return Ayanamsa(FaganBradley, t) }
func KaliAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Kali, t) }
func JanmaAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Janma, t) }
func TrueAyanamsa(t time.Time) (float64, error) { return Ayanamsa(True, t) }
func MadhavaAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Madhava, t) }
func VishnuAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Vishnu, t) }
func YukteshwarAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Yukteshwar, t) }
func SuryasiddhantaAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Suryasiddhanta, t) }
func AryabhattaAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Aryabhatta, t) }
func UshashasiAyanamsa(t time.Time) (float64, error) { return Ayanamsa(Ushashasi, t) }
func TrueCitraAyanamsa(t time.Time) (float64, error) { return Ayanamsa(TrueCitra, t) }
func TrueRevatiAyanamsa(t time.Time) (float64, error) { return Ayanamsa(TrueRevati, t) }
func TruePusyaAyanamsa(t time.Time) (float64, error) { return Ayanamsa(TruePusya, t) }
