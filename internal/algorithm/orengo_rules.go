package algorithm

// RSLP rule tables. Within a step the first matching rule wins, so a
// suffix must come before any shorter suffix it ends with.

var pluralStep = step{
	r("ns", 1, "m"),
	r("ões", 3, "ão"),
	r("ães", 1, "ão", "mães"),
	r("ais", 1, "al", "cais", "mais"),
	r("éis", 2, "el"),
	r("eis", 2, "el"),
	r("óis", 2, "ol"),
	r("is", 2, "il", "lápis", "cais", "mais", "crúcis", "biquínis", "pois", "depois", "dois", "leis"),
	r("les", 3, "l"),
	r("res", 3, "r", "árvores"),
	r("s", 2, "", "aliás", "pires", "lápis", "cais", "mais", "mas", "menos", "férias", "fezes",
		"pêsames", "crúcis", "gás", "atrás", "moisés", "através", "convés", "ês", "país", "após",
		"ambas", "ambos", "messias"),
}

var feminineStep = step{
	r("ona", 3, "ão", "abandona", "lona", "iona", "cortisona", "monótona", "maratona", "acetona",
		"detona", "carona"),
	r("ora", 3, "or"),
	r("na", 4, "no", "carona", "abandona", "lona", "iona", "cortisona", "monótona", "maratona",
		"acetona", "detona", "guiana", "campana", "grana", "caravana", "banana", "paracana",
		"semana", "ultana", "fontana", "plana", "nirvana", "bacana", "tirana", "bandana",
		"peruana", "havana"),
	r("inha", 3, "inho", "rainha", "linha", "minha"),
	r("esa", 3, "ês", "mesa", "obesa", "princesa", "turquesa", "ilesa", "pesa", "presa"),
	r("osa", 3, "oso", "mucosa", "prosa"),
	r("íaca", 3, "íaco"),
	r("ica", 3, "ico", "dica"),
	r("ada", 2, "ado", "pitada"),
	r("ida", 3, "ido", "vida"),
	r("ída", 3, "ido", "recaída", "saída", "dúvida"),
	r("ima", 3, "imo", "vítima"),
	r("iva", 3, "ivo", "saliva", "oliva"),
	r("eira", 3, "eiro", "bandeira", "cabeleira", "capoeira", "lixeira", "peneira", "ribeira",
		"beira", "eira"),
}

var adverbStep = step{
	r("mente", 4, "", "experimente"),
}

var augmentativeStep = step{
	r("díssimo", 5, ""),
	r("abilíssimo", 5, ""),
	r("íssimo", 3, ""),
	r("ésimo", 3, ""),
	r("érrimo", 4, ""),
	r("zinho", 2, ""),
	r("quinho", 4, "c"),
	r("uinho", 4, ""),
	r("adinho", 3, ""),
	r("inho", 3, "", "caminho", "cominho"),
	r("alhão", 4, ""),
	r("uça", 4, ""),
	r("aço", 4, "", "antebraço"),
	r("aça", 4, ""),
	r("adão", 4, ""),
	r("idão", 4, ""),
	r("ázio", 3, "", "topázio"),
	r("arraz", 4, ""),
	r("zarrão", 3, ""),
	r("arrão", 4, ""),
	r("arra", 3, ""),
	r("zão", 2, "", "coalizão"),
	r("ão", 3, "", "camarão", "chimarrão", "canção", "coração", "embrião", "grotão", "glutão",
		"ficção", "fogão", "feição", "furacão", "gamão", "lampião", "leão", "macacão", "nação",
		"órfão", "orgão", "patrão", "portão", "quinhão", "rincão", "tração", "falcão", "espião",
		"mamão", "folião", "cordão", "aptidão", "campeão", "colchão", "limão", "leilão", "melão",
		"barão", "milhão", "bilhão", "fusão", "cristão", "ilusão", "capitão", "estação", "senão"),
}

var nounStep = step{
	r("encialista", 4, ""),
	r("alista", 5, ""),
	r("agem", 3, "", "coragem", "chantagem", "vantagem", "carruagem"),
	r("iamento", 4, ""),
	r("amento", 3, "", "firmamento", "fundamento", "departamento"),
	r("imento", 3, ""),
	r("mento", 6, "", "firmamento", "elemento", "complemento", "instrumento", "departamento"),
	r("alizado", 4, ""),
	r("atizado", 4, ""),
	r("tizado", 4, "", "alfabetizado"),
	r("izado", 5, "", "organizado", "pulverizado"),
	r("ativo", 4, "", "pejorativo", "relativo"),
	r("tivo", 4, "", "relativo"),
	r("ivo", 4, "", "passivo", "possessivo", "pejorativo", "positivo"),
	r("ado", 2, "", "grado"),
	r("ido", 3, "", "cândido", "consolido", "rápido", "decido", "tímido", "duvido", "marido"),
	r("ador", 3, ""),
	r("edor", 3, ""),
	r("idor", 4, "", "ouvidor"),
	r("dor", 4, "", "ouvidor"),
	r("sor", 4, "", "assessor"),
	r("atoria", 5, ""),
	r("tor", 3, "", "benfeitor", "leitor", "editor", "pastor", "produtor", "promotor", "consultor"),
	r("ante", 2, "", "gigante", "elefante", "adiante", "possante", "instante", "restaurante"),
	r("ância", 3, "", "ambulância"),
	r("ência", 3, ""),
	r("ista", 4, "", "artista", "batista", "dentista"),
	r("ismo", 3, "", "cinismo"),
	r("idade", 4, "", "autoridade", "comunidade"),
	r("ização", 5, "", "organização"),
	r("ação", 3, "", "equação"),
	r("ção", 3, "", "informação"),
	r("ável", 2, "", "afável", "razoável", "potável", "vulnerável"),
	r("ível", 5, "", "possível"),
	r("vel", 5, "", "possível"),
	r("eza", 3, ""),
	r("ez", 4, ""),
	r("ico", 4, "", "tico", "público", "explico"),
	r("oso", 3, "", "precioso"),
	r("ário", 3, "", "voluntário", "salário", "aniversário", "diário", "lionário", "armário"),
	r("ério", 6, ""),
	r("ês", 4, ""),
	r("ual", 3, "", "bissexual", "virtual", "visual", "pontual"),
	r("al", 4, "", "afinal", "animal", "estatal", "bissexual", "desleal", "fiscal", "formal",
		"pessoal", "liberal", "postal", "virtual", "visual", "pontual", "sideral", "sucursal"),
	r("ura", 4, "", "imatura", "acupuntura", "costura"),
}

var verbStep = step{
	r("aríamo", 2, ""),
	r("ássemo", 2, ""),
	r("eríamo", 2, ""),
	r("êssemo", 2, ""),
	r("iríamo", 3, ""),
	r("íssemo", 3, ""),
	r("áramo", 2, ""),
	r("árei", 2, ""),
	r("aremo", 2, ""),
	r("ariam", 2, ""),
	r("aríei", 2, ""),
	r("ássei", 2, ""),
	r("assem", 2, ""),
	r("ávamo", 2, ""),
	r("êramo", 3, ""),
	r("eremo", 3, ""),
	r("eriam", 3, ""),
	r("eríei", 3, ""),
	r("êssei", 3, ""),
	r("essem", 3, ""),
	r("íramo", 3, ""),
	r("iremo", 3, ""),
	r("iriam", 3, ""),
	r("iríei", 3, ""),
	r("íssei", 3, ""),
	r("issem", 3, ""),
	r("tizar", 4, "", "alfabetizar"),
	r("izar", 5, "", "organizar"),
	r("itar", 5, "", "acreditar", "explicitar", "estreitar"),
	r("ando", 2, ""),
	r("endo", 3, ""),
	r("indo", 3, ""),
	r("ondo", 3, ""),
	r("aram", 2, ""),
	r("arão", 2, ""),
	r("arde", 2, ""),
	r("arei", 2, ""),
	r("arem", 2, ""),
	r("aria", 2, ""),
	r("armo", 2, ""),
	r("asse", 2, ""),
	r("aste", 2, ""),
	r("avam", 2, "", "agravam"),
	r("ávei", 2, ""),
	r("eram", 3, ""),
	r("erão", 3, ""),
	r("erde", 3, ""),
	r("erei", 3, ""),
	r("êrei", 3, ""),
	r("erem", 3, ""),
	r("eria", 3, ""),
	r("ermo", 3, ""),
	r("esse", 3, ""),
	r("este", 3, "", "faroeste", "agreste"),
	r("íamo", 3, ""),
	r("iram", 3, ""),
	r("íram", 3, ""),
	r("irão", 2, ""),
	r("irde", 2, ""),
	r("irei", 3, "", "admirei"),
	r("irem", 3, "", "adquirem"),
	r("iria", 3, ""),
	r("irmo", 3, ""),
	r("isse", 3, ""),
	r("iste", 4, ""),
	r("iava", 4, "", "ampliava"),
	r("iona", 3, ""),
	r("amo", 2, ""),
	r("ara", 2, "", "arara", "prepara"),
	r("ará", 2, "", "alvará"),
	r("are", 2, "", "prepare"),
	r("ava", 2, "", "agrava"),
	r("emo", 2, ""),
	r("era", 3, "", "acelera", "espera"),
	r("erá", 3, ""),
	r("ere", 3, "", "espere"),
	r("iam", 3, "", "enfiam", "ampliam", "elogiam", "ensaiam"),
	r("íei", 3, ""),
	r("imo", 3, "", "reprimo", "intimo", "íntimo", "nimo", "queimo", "ximo"),
	r("ira", 3, "", "fronteira", "sátira"),
	r("ído", 3, ""),
	r("irá", 3, ""),
	r("ire", 3, "", "adquire"),
	r("omos", 3, ""),
	r("ear", 4, "", "alardear", "nuclear"),
	r("uei", 3, ""),
	r("uía", 5, "", "cuía"),
	r("guem", 3, ""),
	r("ai", 2, ""),
	r("am", 2, ""),
	r("ar", 2, "", "azar", "bazaar", "patamar"),
	r("ei", 3, ""),
	r("em", 2, "", "alem", "virgem"),
	r("er", 2, "", "éter", "pier"),
	r("eu", 3, "", "chapeu"),
	r("ia", 3, "", "estória", "fatia", "acia", "praia", "elogia", "mania", "lábia", "aprecia",
		"polícia", "arredia", "cheia", "ásia"),
	r("ir", 3, "", "freir"),
	r("iu", 3, ""),
	r("eou", 5, ""),
	r("ou", 3, ""),
	r("i", 3, ""),
}

var vowelStep = step{
	r("bil", 2, "vel"),
	r("gue", 2, "g", "gangue", "jegue"),
	r("á", 3, ""),
	r("ê", 3, "", "bebê"),
	r("a", 3, "", "ásia"),
	r("e", 3, ""),
	r("o", 3, "", "ão"),
}
